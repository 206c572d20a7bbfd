package remove_slot

import "context"

type ScheduleService interface {
	RemoveSlot(ctx context.Context, scheduleID, slotID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
