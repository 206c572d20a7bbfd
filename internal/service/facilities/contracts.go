package facilities

import (
	"context"

	"github.com/m04kA/FMS-BookingService/internal/domain"
)

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) (*domain.Facility, error)
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	List(ctx context.Context, buildingID *int64) ([]*domain.Facility, error)
	AttachSchedule(ctx context.Context, facilityID, scheduleID int64) error
}

// ScheduleRepository интерфейс репозитория расписаний
// Нужен для проверки существования расписания при привязке
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
