package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/FMS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error)
}

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
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
