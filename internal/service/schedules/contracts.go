package schedules

import (
	"context"
	"time"

	"github.com/m04kA/FMS-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	AddSlot(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	DeleteSlot(ctx context.Context, slotID int64) error
}

// BookingRepository интерфейс репозитория бронирований
// Нужен для проверки, что слот не используется активными бронированиями
type BookingRepository interface {
	CountForSlotExists(ctx context.Context, slotID int64) (bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
