package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	"github.com/m04kA/FMS-BookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/FMS-BookingService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований.
// Управляет переходами pending -> approved/rejected/cancelled и
// approved -> cancelled; все остальные переходы запрещены.
type Service struct {
	bookingRepo  BookingRepository
	authClient   AuthServiceClient
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	authClient AuthServiceClient,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		authClient:   authClient,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь может видеть только своё бронирование,
// модератор объекта - любое бронирование этого объекта.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetFacilityBookings получает бронирования объекта с гибкой фильтрацией.
// Это источник данных для календаря модерации; доступно только модераторам объекта.
func (s *Service) GetFacilityBookings(ctx context.Context, req *models.GetFacilityBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetFacilityBookings: fetching bookings for facility=%d, user=%d", req.FacilityID, req.UserID)

	// Проверяем права модератора
	if err := s.checkModeratorAccess(ctx, req.UserID, req.FacilityID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFacilityBookings: invalid filter for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFacilityBookings: repository error for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: GetFacilityBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFacilityBookings: successfully fetched %d bookings for facility=%d", len(bookings), req.FacilityID)
	return models.FromDomainBookingList(bookings), nil
}

// Decide принимает решение по бронированию: approved или rejected.
// Решение возможно только по pending бронированию и только модератором объекта.
// Фиксируются автор решения, время и комментарий.
func (s *Service) Decide(ctx context.Context, bookingID int64, req *models.DecideBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Decide: booking id=%d, decision=%s, decider=%d", bookingID, req.Decision, req.DeciderID)

	// Валидируем решение
	decision, err := models.ToDecisionStatus(req.Decision)
	if err != nil {
		s.logger.Warn("Decide: invalid decision=%s for booking id=%d", req.Decision, bookingID)
		return nil, fmt.Errorf("%w: decision must be approved or rejected", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "Decide", bookingID)
	if err != nil {
		return nil, err
	}

	// Решение возможно только по ожидающему бронированию
	if booking.IsDecided() {
		s.logger.Warn("Decide: booking id=%d is already decided, status=%s", bookingID, booking.Status)
		return nil, ErrAlreadyDecided
	}

	// Проверяем права модератора
	if err := s.checkModeratorAccess(ctx, req.DeciderID, booking.FacilityID); err != nil {
		s.logger.Warn("Decide: access denied for user=%d to booking id=%d", req.DeciderID, bookingID)
		return nil, err
	}

	now := s.timeProvider.Now()

	// Записываем решение; guard по статусу в репозитории защищает от гонки
	// двух модераторов
	if err := s.bookingRepo.UpdateDecision(ctx, bookingID, decision, req.DeciderID, now, req.Comment); err != nil {
		if errors.Is(err, bookingRepo.ErrNotPending) {
			s.logger.Warn("Decide: booking id=%d was decided concurrently", bookingID)
			return nil, ErrAlreadyDecided
		}
		s.logger.Error("Decide: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
	}

	booking.Status = decision
	booking.DecidedBy = &req.DeciderID
	booking.DecidedAt = &now
	booking.DecisionComment = req.Comment
	booking.UpdatedAt = now

	s.publishEvent(ctx, decisionEventKey(decision), booking, req.DeciderID)

	s.logger.Info("Decide: booking id=%d decided, status=%s", bookingID, decision)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование.
// Отменить может автор бронирования или модератор объекта.
// Отмена возможна из pending и approved; rejected и cancelled - терминальные.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return nil, err
	}

	// Проверяем права: автор бронирования или модератор объекта
	if booking.UserID != req.UserID {
		if err := s.checkModeratorAccess(ctx, req.UserID, booking.FacilityID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return nil, err
		}
	}

	// Проверяем, что бронирование ещё можно отменить
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	now := s.timeProvider.Now()

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason, now); err != nil {
		if errors.Is(err, bookingRepo.ErrNotCancellable) {
			s.logger.Warn("Cancel: booking id=%d became non-cancellable concurrently", bookingID)
			return nil, ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	booking.CancellationReason = &req.CancellationReason
	booking.CancelledAt = &now
	booking.UpdatedAt = now

	s.publishEvent(ctx, events.KeyBookingCancelled, booking, req.UserID)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

// getBooking получает бронирование с единообразной обработкой ошибок
func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	// Автор бронирования всегда имеет доступ
	if booking.UserID == userID {
		return nil
	}
	return s.checkModeratorAccess(ctx, userID, booking.FacilityID)
}

// checkModeratorAccess проверяет права модератора через AuthService.
// Недоступность AuthService не трактуется как отказ в правах - возвращается ErrInternal.
func (s *Service) checkModeratorAccess(ctx context.Context, userID, facilityID int64) error {
	ok, err := s.authClient.CanModerate(ctx, userID, facilityID)
	if err != nil {
		s.logger.Error("checkModeratorAccess: authservice error for user=%d, facility=%d: %v", userID, facilityID, err)
		return fmt.Errorf("%w: checkModeratorAccess - authservice error: %v", ErrInternal, err)
	}
	if !ok {
		s.logger.Warn("checkModeratorAccess: user=%d is not a moderator of facility=%d", userID, facilityID)
		return ErrAccessDenied
	}
	return nil
}

// publishEvent публикует событие жизненного цикла (best-effort)
func (s *Service) publishEvent(ctx context.Context, key string, booking *domain.Booking, actorID int64) {
	event := events.BookingEvent{
		BookingID:   booking.ID,
		FacilityID:  booking.FacilityID,
		SlotID:      booking.SlotID,
		UserID:      booking.UserID,
		BookingDate: booking.BookingDate.Format(domain.DateFormat),
		Status:      string(booking.Status),
		ActorID:     actorID,
		OccurredAt:  s.timeProvider.Now(),
	}

	if err := s.publisher.PublishBookingEvent(ctx, key, event); err != nil {
		// Событие не критично для результата операции
		s.logger.Error("publishEvent: failed to publish %s for booking id=%d: %v", key, booking.ID, err)
	}
}

func decisionEventKey(decision domain.BookingStatus) string {
	if decision == domain.StatusApproved {
		return events.KeyBookingApproved
	}
	return events.KeyBookingRejected
}
