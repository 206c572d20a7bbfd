package attach_schedule

import "context"

type FacilityService interface {
	AttachSchedule(ctx context.Context, facilityID, scheduleID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
