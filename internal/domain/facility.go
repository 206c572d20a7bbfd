package domain

import "time"

// Facility represents a bookable room or area inside a building.
// A facility is bound to exactly one schedule, which defines its
// bookable time windows.
type Facility struct {
	ID         int64
	Name       string
	BuildingID int64
	ScheduleID int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
