package schedules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/FMS-BookingService/internal/service/schedules/models"
	"github.com/m04kA/FMS-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeScheduleRepo struct {
	schedule    *domain.Schedule
	addedSlot   *domain.Slot
	deletedSlot int64
}

func (r *fakeScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	if r.schedule == nil || r.schedule.ID != id {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return r.schedule, nil
}

func (r *fakeScheduleRepo) AddSlot(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	created := *slot
	created.ID = 500
	r.addedSlot = &created
	return &created, nil
}

func (r *fakeScheduleRepo) DeleteSlot(ctx context.Context, slotID int64) error {
	r.deletedSlot = slotID
	return nil
}

type fakeBookingRepo struct {
	slotInUse bool
}

func (r *fakeBookingRepo) CountForSlotExists(ctx context.Context, slotID int64) (bool, error) {
	return r.slotInUse, nil
}

func testSchedule() *domain.Schedule {
	return &domain.Schedule{
		ID:   1,
		Name: "Будние дни",
		Slots: []domain.Slot{
			{ID: 100, ScheduleID: 1, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("11:00"), Capacity: 2},
			{ID: 101, ScheduleID: 1, StartTime: types.TimeString("11:00"), EndTime: types.TimeString("13:00"), Capacity: 1},
		},
	}
}

func TestAddSlot_Success(t *testing.T) {
	repo := &fakeScheduleRepo{schedule: testSchedule()}
	svc := NewService(repo, &fakeBookingRepo{}, nopLogger{})

	resp, err := svc.AddSlot(context.Background(), 1, &models.AddSlotRequest{
		StartTime: "14:00",
		EndTime:   "16:00",
		Capacity:  3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(500), resp.ID)
	assert.Equal(t, "14:00", resp.StartTime)
	assert.Equal(t, 3, resp.Capacity)
	require.NotNil(t, repo.addedSlot)
	assert.Equal(t, int64(1), repo.addedSlot.ScheduleID)
}

func TestAddSlot_BackToBackAllowed(t *testing.T) {
	// Слот, начинающийся ровно в момент окончания существующего, пересечением не считается
	repo := &fakeScheduleRepo{schedule: testSchedule()}
	svc := NewService(repo, &fakeBookingRepo{}, nopLogger{})

	_, err := svc.AddSlot(context.Background(), 1, &models.AddSlotRequest{
		StartTime: "13:00",
		EndTime:   "15:00",
		Capacity:  1,
	})

	assert.NoError(t, err)
}

func TestAddSlot_Overlap(t *testing.T) {
	repo := &fakeScheduleRepo{schedule: testSchedule()}
	svc := NewService(repo, &fakeBookingRepo{}, nopLogger{})

	_, err := svc.AddSlot(context.Background(), 1, &models.AddSlotRequest{
		StartTime: "10:00",
		EndTime:   "12:00",
		Capacity:  1,
	})

	assert.ErrorIs(t, err, ErrSlotsOverlap)
	assert.Nil(t, repo.addedSlot)
}

func TestAddSlot_ScheduleNotFound(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := svc.AddSlot(context.Background(), 42, &models.AddSlotRequest{
		StartTime: "14:00",
		EndTime:   "16:00",
		Capacity:  1,
	})

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestAddSlot_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.AddSlotRequest
	}{
		{"bad start format", models.AddSlotRequest{StartTime: "9:00", EndTime: "11:00", Capacity: 1}},
		{"bad end format", models.AddSlotRequest{StartTime: "09:00", EndTime: "25:00", Capacity: 1}},
		{"start equals end", models.AddSlotRequest{StartTime: "14:00", EndTime: "14:00", Capacity: 1}},
		{"start after end", models.AddSlotRequest{StartTime: "16:00", EndTime: "14:00", Capacity: 1}},
		{"zero capacity", models.AddSlotRequest{StartTime: "14:00", EndTime: "16:00", Capacity: 0}},
	}

	svc := NewService(&fakeScheduleRepo{schedule: testSchedule()}, &fakeBookingRepo{}, nopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddSlot(context.Background(), 1, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRemoveSlot_Success(t *testing.T) {
	repo := &fakeScheduleRepo{schedule: testSchedule()}
	svc := NewService(repo, &fakeBookingRepo{}, nopLogger{})

	err := svc.RemoveSlot(context.Background(), 1, 100)

	require.NoError(t, err)
	assert.Equal(t, int64(100), repo.deletedSlot)
}

func TestRemoveSlot_SlotInUse(t *testing.T) {
	repo := &fakeScheduleRepo{schedule: testSchedule()}
	svc := NewService(repo, &fakeBookingRepo{slotInUse: true}, nopLogger{})

	err := svc.RemoveSlot(context.Background(), 1, 100)

	assert.ErrorIs(t, err, ErrSlotInUse)
	assert.Zero(t, repo.deletedSlot)
}

func TestRemoveSlot_SlotNotFound(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{schedule: testSchedule()}, &fakeBookingRepo{}, nopLogger{})

	err := svc.RemoveSlot(context.Background(), 1, 999)

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestRemoveSlot_ScheduleNotFound(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeBookingRepo{}, nopLogger{})

	err := svc.RemoveSlot(context.Background(), 42, 100)

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
