package request_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	"github.com/m04kA/FMS-BookingService/internal/infra/events"
	facilityRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/facility"
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 42
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	r.created = booking
	return booking, nil
}

func (r *fakeBookingRepo) GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	return r.existing, nil
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

type fakePublisher struct {
	keys []string
}

func (p *fakePublisher) PublishBookingEvent(ctx context.Context, key string, event events.BookingEvent) error {
	p.keys = append(p.keys, key)
	return nil
}

var testNow = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func testSchedule(capacity int) *domain.Schedule {
	return &domain.Schedule{
		ID: 10,
		Slots: []domain.Slot{
			{ID: 100, ScheduleID: 10, StartTime: "09:00", EndTime: "10:00", Capacity: capacity},
		},
	}
}

func booking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{FacilityID: 1, SlotID: 100, Status: status}
}

func newTestUseCase(
	bookings *fakeBookingRepo,
	facilities *fakeFacilityRepo,
	schedules *fakeScheduleRepo,
	publisher *fakePublisher,
) *UseCase {
	uc := NewUseCase(bookings, facilities, schedules, publisher, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:     7,
		FacilityID: 1,
		SlotID:     100,
		Date:       time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	publisher := &fakePublisher{}
	uc := newTestUseCase(
		bookings,
		&fakeFacilityRepo{facility: &domain.Facility{ID: 1, ScheduleID: 10}},
		&fakeScheduleRepo{schedule: testSchedule(2)},
		publisher,
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "09:00", resp.StartTime.String())
	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusPending, bookings.created.Status)
	assert.Equal(t, []string{events.KeyBookingRequested}, publisher.keys)
}

func TestExecute_SlotFull(t *testing.T) {
	// Вместимость 1, одно pending бронирование уже есть
	bookings := &fakeBookingRepo{existing: []*domain.Booking{booking(domain.StatusPending)}}
	uc := newTestUseCase(
		bookings,
		&fakeFacilityRepo{facility: &domain.Facility{ID: 1, ScheduleID: 10}},
		&fakeScheduleRepo{schedule: testSchedule(1)},
		&fakePublisher{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, bookings.created)
}

func TestExecute_ApprovedBookingConsumesCapacity(t *testing.T) {
	bookings := &fakeBookingRepo{existing: []*domain.Booking{booking(domain.StatusApproved)}}
	uc := newTestUseCase(
		bookings,
		&fakeFacilityRepo{facility: &domain.Facility{ID: 1, ScheduleID: 10}},
		&fakeScheduleRepo{schedule: testSchedule(1)},
		&fakePublisher{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledBookingReleasesCapacity(t *testing.T) {
	// Отменённые и отклонённые бронирования вместимость не занимают
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		booking(domain.StatusCancelled),
		booking(domain.StatusRejected),
	}}
	uc := newTestUseCase(
		bookings,
		&fakeFacilityRepo{facility: &domain.Facility{ID: 1, ScheduleID: 10}},
		&fakeScheduleRepo{schedule: testSchedule(1)},
		&fakePublisher{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.NotNil(t, bookings.created)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeFacilityRepo{facility: &domain.Facility{ID: 1, ScheduleID: 10}},
		&fakeScheduleRepo{schedule: testSchedule(1)},
		&fakePublisher{},
	)

	req := validRequest()
	req.Date = time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayIsBookable(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeFacilityRepo{facility: &domain.Facility{ID: 1, ScheduleID: 10}},
		&fakeScheduleRepo{schedule: testSchedule(1)},
		&fakePublisher{},
	)

	req := validRequest()
	req.Date = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_TodayBookableWhenServerWestOfUTC(t *testing.T) {
	// Дата бронирования приходит как UTC-полночь; часовой пояс
	// серверных часов не должен сдвигать границу "сегодня"
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeFacilityRepo{facility: &domain.Facility{ID: 1, ScheduleID: 10}},
		&fakeScheduleRepo{schedule: testSchedule(1)},
		&fakePublisher{},
	)
	uc.timeProvider = &fakeTimeProvider{
		now: time.Date(2025, 9, 1, 10, 0, 0, 0, time.FixedZone("UTC-7", -7*3600)),
	}

	req := validRequest()
	req.Date = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeFacilityRepo{facility: &domain.Facility{ID: 1, ScheduleID: 10}},
		&fakeScheduleRepo{schedule: testSchedule(1)},
		&fakePublisher{},
	)

	req := validRequest()
	req.SlotID = 999

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeFacilityRepo{},
		&fakeScheduleRepo{schedule: testSchedule(1)},
		&fakePublisher{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeFacilityRepo{facility: &domain.Facility{ID: 1, ScheduleID: 10}},
		&fakeScheduleRepo{schedule: testSchedule(1)},
		&fakePublisher{},
	)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero facility", func(r *Request) { r.FacilityID = 0 }},
		{"zero slot", func(r *Request) { r.SlotID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
