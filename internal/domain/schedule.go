package domain

import (
	"time"

	"github.com/m04kA/FMS-BookingService/pkg/types"
)

// Schedule represents a named set of time slots applicable to facilities.
// Slot time ranges within one schedule never overlap; back-to-back slots
// (a.end == b.start) are allowed.
type Schedule struct {
	ID        int64
	Name      string
	Slots     []Slot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindSlot returns the slot with the given ID, or nil if the schedule
// does not contain it
func (s *Schedule) FindSlot(slotID int64) *Slot {
	for i := range s.Slots {
		if s.Slots[i].ID == slotID {
			return &s.Slots[i]
		}
	}
	return nil
}

// Slot represents a fixed daily time window with a booking capacity
type Slot struct {
	ID         int64
	ScheduleID int64
	StartTime  types.TimeString
	EndTime    types.TimeString
	Capacity   int // Максимум одновременных активных бронирований на (объект, дату)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Overlaps returns true if the two slot windows truly intersect.
// Touching boundaries (a.EndTime == b.StartTime) are not an overlap.
func (s *Slot) Overlaps(other *Slot) bool {
	return s.StartTime.IsBefore(other.EndTime) && s.EndTime.IsAfter(other.StartTime)
}
