package domain

// Business validation constants
const (
	MinSlotCapacity = 1
	MaxSlotCapacity = 500

	MaxScheduleNameLength = 200
	MaxSlotsPerSchedule   = 100

	MaxDescriptionLength     = 1000
	MaxDecisionCommentLength = 500
	MaxCancelReasonLength    = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, занимающих место в слоте.
// Используется при подсчёте оставшейся ёмкости.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// InactiveStatuses список статусов, освобождающих место в слоте
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
}
