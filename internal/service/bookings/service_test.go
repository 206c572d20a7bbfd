package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	"github.com/m04kA/FMS-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/FMS-BookingService/internal/service/bookings/models"
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
	booking         *domain.Booking
	updateErr       error
	cancelErr       error
	decidedStatus   domain.BookingStatus
	cancelledReason string
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if r.booking == nil || r.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *r.booking
	return &copied, nil
}

func (r *fakeBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if r.booking != nil && r.booking.UserID == userID {
		return []*domain.Booking{r.booking}, nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	if r.booking != nil && r.booking.FacilityID == filter.FacilityID {
		return []*domain.Booking{r.booking}, nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) UpdateDecision(ctx context.Context, id int64, status domain.BookingStatus, decidedBy int64, decidedAt time.Time, comment *string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.decidedStatus = status
	return nil
}

func (r *fakeBookingRepo) Cancel(ctx context.Context, id int64, reason string, cancelledAt time.Time) error {
	if r.cancelErr != nil {
		return r.cancelErr
	}
	r.cancelledReason = reason
	return nil
}

// fakeAuthClient считает модераторами пользователей из списка
type fakeAuthClient struct {
	moderators map[int64]bool
	err        error
}

func (c *fakeAuthClient) CanModerate(ctx context.Context, userID, facilityID int64) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	return c.moderators[userID], nil
}

type fakePublisher struct {
	keys []string
}

func (p *fakePublisher) PublishBookingEvent(ctx context.Context, key string, event events.BookingEvent) error {
	p.keys = append(p.keys, key)
	return nil
}

var testNow = time.Date(2025, 9, 1, 15, 0, 0, 0, time.UTC)

const (
	ownerID     = int64(7)
	moderatorID = int64(50)
	strangerID  = int64(99)
)

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:          1,
		FacilityID:  2,
		ScheduleID:  10,
		SlotID:      100,
		UserID:      ownerID,
		BookingDate: time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC),
		Status:      domain.StatusPending,
	}
}

func newTestService(repo *fakeBookingRepo, auth *fakeAuthClient, publisher *fakePublisher) *Service {
	svc := NewService(repo, auth, publisher, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: testNow}
	return svc
}

func moderatorsOnly() *fakeAuthClient {
	return &fakeAuthClient{moderators: map[int64]bool{moderatorID: true}}
}

func TestDecide_Approve(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	publisher := &fakePublisher{}
	svc := newTestService(repo, moderatorsOnly(), publisher)

	resp, err := svc.Decide(context.Background(), 1, &models.DecideBookingRequest{
		DeciderID: moderatorID,
		Decision:  "approved",
		Comment:   ptr.Ptr("ок"),
	})

	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	require.NotNil(t, resp.DecidedBy)
	assert.Equal(t, moderatorID, *resp.DecidedBy)
	assert.NotNil(t, resp.DecidedAt)
	assert.Equal(t, domain.StatusApproved, repo.decidedStatus)
	assert.Equal(t, []string{events.KeyBookingApproved}, publisher.keys)
}

func TestDecide_Reject(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	publisher := &fakePublisher{}
	svc := newTestService(repo, moderatorsOnly(), publisher)

	resp, err := svc.Decide(context.Background(), 1, &models.DecideBookingRequest{
		DeciderID: moderatorID,
		Decision:  "rejected",
	})

	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
	assert.Equal(t, []string{events.KeyBookingRejected}, publisher.keys)
}

func TestDecide_AlreadyDecided(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusApproved
	svc := newTestService(&fakeBookingRepo{booking: booking}, moderatorsOnly(), &fakePublisher{})

	_, err := svc.Decide(context.Background(), 1, &models.DecideBookingRequest{
		DeciderID: moderatorID,
		Decision:  "rejected",
	})

	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestDecide_ConcurrentDecision(t *testing.T) {
	// Второй модератор проиграл гонку: репозиторий вернул ErrNotPending
	repo := &fakeBookingRepo{booking: pendingBooking(), updateErr: bookingRepo.ErrNotPending}
	svc := newTestService(repo, moderatorsOnly(), &fakePublisher{})

	_, err := svc.Decide(context.Background(), 1, &models.DecideBookingRequest{
		DeciderID: moderatorID,
		Decision:  "approved",
	})

	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestDecide_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: pendingBooking()}, moderatorsOnly(), &fakePublisher{})

	_, err := svc.Decide(context.Background(), 1, &models.DecideBookingRequest{
		DeciderID: strangerID,
		Decision:  "approved",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDecide_OwnerCannotDecide(t *testing.T) {
	// Автор бронирования не модератор - решение ему недоступно
	svc := newTestService(&fakeBookingRepo{booking: pendingBooking()}, moderatorsOnly(), &fakePublisher{})

	_, err := svc.Decide(context.Background(), 1, &models.DecideBookingRequest{
		DeciderID: ownerID,
		Decision:  "approved",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDecide_InvalidDecision(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: pendingBooking()}, moderatorsOnly(), &fakePublisher{})

	_, err := svc.Decide(context.Background(), 1, &models.DecideBookingRequest{
		DeciderID: moderatorID,
		Decision:  "cancelled",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDecide_AuthServiceErrorIsNotAccessDenied(t *testing.T) {
	// Недоступность AuthService не означает отсутствие прав
	auth := &fakeAuthClient{err: errors.New("connection refused")}
	svc := newTestService(&fakeBookingRepo{booking: pendingBooking()}, auth, &fakePublisher{})

	_, err := svc.Decide(context.Background(), 1, &models.DecideBookingRequest{
		DeciderID: moderatorID,
		Decision:  "approved",
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_ByOwner(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	publisher := &fakePublisher{}
	svc := newTestService(repo, moderatorsOnly(), publisher)

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             ownerID,
		CancellationReason: "планы изменились",
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "планы изменились", repo.cancelledReason)
	assert.Equal(t, []string{events.KeyBookingCancelled}, publisher.keys)
}

func TestCancel_ApprovedByModerator(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusApproved
	repo := &fakeBookingRepo{booking: booking}
	svc := newTestService(repo, moderatorsOnly(), &fakePublisher{})

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             moderatorID,
		CancellationReason: "ремонт помещения",
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestCancel_ByStranger(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: pendingBooking()}, moderatorsOnly(), &fakePublisher{})

	_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             strangerID,
		CancellationReason: "x",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_TerminalStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusRejected, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			booking := pendingBooking()
			booking.Status = status
			svc := newTestService(&fakeBookingRepo{booking: booking}, moderatorsOnly(), &fakePublisher{})

			_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
				UserID:             ownerID,
				CancellationReason: "x",
			})

			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestGetByID_Owner(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: pendingBooking()}, moderatorsOnly(), &fakePublisher{})

	resp, err := svc.GetByID(context.Background(), 1, ownerID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestGetByID_Stranger(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: pendingBooking()}, moderatorsOnly(), &fakePublisher{})

	_, err := svc.GetByID(context.Background(), 1, strangerID)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, moderatorsOnly(), &fakePublisher{})

	_, err := svc.GetByID(context.Background(), 1, ownerID)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetFacilityBookings_ModeratorOnly(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: pendingBooking()}, moderatorsOnly(), &fakePublisher{})

	_, err := svc.GetFacilityBookings(context.Background(), &models.GetFacilityBookingsRequest{
		UserID:     strangerID,
		FacilityID: 2,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetFacilityBookings(context.Background(), &models.GetFacilityBookingsRequest{
		UserID:     moderatorID,
		FacilityID: 2,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: pendingBooking()}, moderatorsOnly(), &fakePublisher{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: ownerID,
		Status: ptr.Ptr("unknown"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
