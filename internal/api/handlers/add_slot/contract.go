package add_slot

import (
	"context"

	"github.com/m04kA/FMS-BookingService/internal/service/schedules/models"
)

type ScheduleService interface {
	AddSlot(ctx context.Context, scheduleID int64, req *models.AddSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
