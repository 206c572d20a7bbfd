package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/FMS-BookingService/pkg/types"
)

func slot(start, end string) *Slot {
	return &Slot{StartTime: types.TimeString(start), EndTime: types.TimeString(end)}
}

func TestSlot_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    *Slot
		b    *Slot
		want bool
	}{
		{"partial overlap", slot("09:00", "11:00"), slot("10:00", "12:00"), true},
		{"contained", slot("09:00", "18:00"), slot("10:00", "11:00"), true},
		{"identical", slot("09:00", "10:00"), slot("09:00", "10:00"), true},
		{"back to back", slot("09:00", "10:00"), slot("10:00", "11:00"), false},
		{"back to back reversed", slot("10:00", "11:00"), slot("09:00", "10:00"), false},
		{"disjoint", slot("09:00", "10:00"), slot("14:00", "15:00"), false},
		{"one minute overlap", slot("09:00", "10:01"), slot("10:00", "11:00"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestSchedule_FindSlot(t *testing.T) {
	schedule := &Schedule{
		Slots: []Slot{
			{ID: 1, StartTime: "09:00", EndTime: "10:00"},
			{ID: 2, StartTime: "10:00", EndTime: "11:00"},
		},
	}

	found := schedule.FindSlot(2)
	assert.NotNil(t, found)
	assert.Equal(t, int64(2), found.ID)

	assert.Nil(t, schedule.FindSlot(99))
}
