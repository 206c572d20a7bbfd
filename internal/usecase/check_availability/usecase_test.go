package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	facilityRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/facility"
	"github.com/m04kA/FMS-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	if filter.SlotID == nil {
		return r.bookings, nil
	}
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.SlotID == *filter.SlotID {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeFacilityRepo struct {
	facility *domain.Facility
}

func (r *fakeFacilityRepo) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	if r.facility == nil || r.facility.ID != id {
		return nil, facilityRepo.ErrFacilityNotFound
	}
	return r.facility, nil
}

type fakeScheduleRepo struct {
	schedule *domain.Schedule
}

func (r *fakeScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	return r.schedule, nil
}

var testNow = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(bookings *fakeBookingRepo) *UseCase {
	schedule := &domain.Schedule{
		ID: 10,
		Slots: []domain.Slot{
			{ID: 100, ScheduleID: 10, StartTime: "09:00", EndTime: "10:00", Capacity: 2},
			{ID: 101, ScheduleID: 10, StartTime: "10:00", EndTime: "11:00", Capacity: 1},
		},
	}

	uc := NewUseCase(
		bookings,
		&fakeFacilityRepo{facility: &domain.Facility{ID: 1, ScheduleID: 10}},
		&fakeScheduleRepo{schedule: schedule},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func slotBooking(slotID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{FacilityID: 1, SlotID: slotID, Status: status}
}

func TestExecute_AllSlotsFree(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		Date:       time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, 2, resp.Slots[0].CapacityRemaining)
	assert.True(t, resp.Slots[0].Available)
	assert.Equal(t, 1, resp.Slots[1].CapacityRemaining)
}

func TestExecute_CountsActiveBookingsOnly(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{bookings: []*domain.Booking{
		slotBooking(100, domain.StatusPending),
		slotBooking(100, domain.StatusApproved),
		slotBooking(100, domain.StatusCancelled),
		slotBooking(100, domain.StatusRejected),
	}})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		Date:       time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	// Из вместимости 2 занято двумя активными бронированиями
	assert.Equal(t, 0, resp.Slots[0].CapacityRemaining)
	assert.False(t, resp.Slots[0].Available)
	// Второй слот пустой
	assert.Equal(t, 1, resp.Slots[1].CapacityRemaining)
	assert.True(t, resp.Slots[1].Available)
}

func TestExecute_SingleSlotFilter(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{bookings: []*domain.Booking{
		slotBooking(101, domain.StatusApproved),
	}})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		Date:       time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
		SlotID:     ptr.Ptr(int64(101)),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int64(101), resp.Slots[0].SlotID)
	assert.Equal(t, 0, resp.Slots[0].CapacityRemaining)
}

func TestExecute_UnknownSlot(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		Date:       time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
		SlotID:     ptr.Ptr(int64(999)),
	})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_PastDateReturnsEmptyList(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		Date:       time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodayNotPastWhenServerWestOfUTC(t *testing.T) {
	// Граница "сегодня" считается в UTC, как и запрошенная дата
	uc := newTestUseCase(&fakeBookingRepo{})
	uc.timeProvider = &fakeTimeProvider{
		now: time.Date(2025, 9, 1, 10, 0, 0, 0, time.FixedZone("UTC-7", -7*3600)),
	}

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 1,
		Date:       time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		FacilityID: 999,
		Date:       time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}
