package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_ConsumesCapacity(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).ConsumesCapacity())
	assert.True(t, (&Booking{Status: StatusApproved}).ConsumesCapacity())
	assert.False(t, (&Booking{Status: StatusRejected}).ConsumesCapacity())
	assert.False(t, (&Booking{Status: StatusCancelled}).ConsumesCapacity())
}

func TestBooking_IsDecided(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).IsDecided())
	assert.True(t, (&Booking{Status: StatusApproved}).IsDecided())
	assert.True(t, (&Booking{Status: StatusRejected}).IsDecided())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsDecided())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusApproved}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusRejected}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}
