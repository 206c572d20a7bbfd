package create_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FMS-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// fakeScheduleRepo сохраняет расписания в памяти
type fakeScheduleRepo struct {
	created *domain.Schedule
	err     error
}

func (r *fakeScheduleRepo) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	if r.err != nil {
		return nil, r.err
	}

	schedule.ID = 1
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = schedule.CreatedAt
	for i := range schedule.Slots {
		schedule.Slots[i].ID = int64(i + 1)
		schedule.Slots[i].ScheduleID = schedule.ID
	}

	r.created = schedule
	return schedule, nil
}

func newTestUseCase(repo *fakeScheduleRepo, tx *fakeTxManager) *UseCase {
	return NewUseCase(repo, tx, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeScheduleRepo{}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, tx)

	resp, err := uc.Execute(context.Background(), &Request{
		Name: "Учебные аудитории",
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:00", Capacity: 2},
			{StartTime: "10:00", EndTime: "11:00", Capacity: 3},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Len(t, resp.Slots, 2)
	assert.Equal(t, 1, tx.calls)
}

func TestExecute_SortsSlotsByStartTime(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newTestUseCase(repo, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		Name: "Спортзал",
		Slots: []SlotInput{
			{StartTime: "14:00", EndTime: "15:00", Capacity: 1},
			{StartTime: "09:00", EndTime: "10:00", Capacity: 1},
			{StartTime: "11:00", EndTime: "12:00", Capacity: 1},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "11:00", resp.Slots[1].StartTime.String())
	assert.Equal(t, "14:00", resp.Slots[2].StartTime.String())
}

func TestExecute_BackToBackSlotsAllowed(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := newTestUseCase(repo, &fakeTxManager{})

	// Соприкасающиеся границы пересечением не считаются
	_, err := uc.Execute(context.Background(), &Request{
		Name: "Переговорная",
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:00", Capacity: 1},
			{StartTime: "10:00", EndTime: "11:00", Capacity: 1},
			{StartTime: "11:00", EndTime: "12:00", Capacity: 1},
		},
	})

	assert.NoError(t, err)
}

func TestExecute_OverlappingSlotsRejected(t *testing.T) {
	tests := []struct {
		name  string
		slots []SlotInput
	}{
		{
			"partial overlap",
			[]SlotInput{
				{StartTime: "09:00", EndTime: "11:00", Capacity: 1},
				{StartTime: "10:00", EndTime: "12:00", Capacity: 1},
			},
		},
		{
			"contained slot",
			[]SlotInput{
				{StartTime: "09:00", EndTime: "18:00", Capacity: 1},
				{StartTime: "12:00", EndTime: "13:00", Capacity: 1},
			},
		},
		{
			"identical slots",
			[]SlotInput{
				{StartTime: "09:00", EndTime: "10:00", Capacity: 1},
				{StartTime: "09:00", EndTime: "10:00", Capacity: 1},
			},
		},
		{
			"overlap detected after sorting",
			[]SlotInput{
				{StartTime: "14:00", EndTime: "16:00", Capacity: 1},
				{StartTime: "09:00", EndTime: "10:00", Capacity: 1},
				{StartTime: "15:00", EndTime: "17:00", Capacity: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeScheduleRepo{}
			uc := newTestUseCase(repo, &fakeTxManager{})

			_, err := uc.Execute(context.Background(), &Request{Name: "x", Slots: tt.slots})

			assert.ErrorIs(t, err, ErrSlotsOverlap)
			assert.Nil(t, repo.created)
		})
	}
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"empty name", &Request{Name: "  ", Slots: []SlotInput{{StartTime: "09:00", EndTime: "10:00", Capacity: 1}}}},
		{"no slots", &Request{Name: "x", Slots: nil}},
		{"zero capacity", &Request{Name: "x", Slots: []SlotInput{{StartTime: "09:00", EndTime: "10:00", Capacity: 0}}}},
		{"start equals end", &Request{Name: "x", Slots: []SlotInput{{StartTime: "10:00", EndTime: "10:00", Capacity: 1}}}},
		{"start after end", &Request{Name: "x", Slots: []SlotInput{{StartTime: "11:00", EndTime: "10:00", Capacity: 1}}}},
		{"invalid time format", &Request{Name: "x", Slots: []SlotInput{{StartTime: "9:00", EndTime: "10:00", Capacity: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeScheduleRepo{}, &fakeTxManager{})

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
