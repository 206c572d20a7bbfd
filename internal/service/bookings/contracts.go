package bookings

import (
	"context"
	"time"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	"github.com/m04kA/FMS-BookingService/internal/infra/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error)
	UpdateDecision(ctx context.Context, id int64, status domain.BookingStatus, decidedBy int64, decidedAt time.Time, comment *string) error
	Cancel(ctx context.Context, id int64, reason string, cancelledAt time.Time) error
}

// AuthServiceClient интерфейс клиента для AuthService
type AuthServiceClient interface {
	CanModerate(ctx context.Context, userID, facilityID int64) (bool, error)
}

// EventPublisher интерфейс публикации событий жизненного цикла бронирований
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, key string, event events.BookingEvent) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
