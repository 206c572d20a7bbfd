package request_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	"github.com/m04kA/FMS-BookingService/internal/infra/events"
	facilityRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/facility"
	scheduleRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/FMS-BookingService/pkg/ptr"
)

// UseCase use case для создания заявки на бронирование слота
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	scheduleRepo ScheduleRepository
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	scheduleRepo ScheduleRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		scheduleRepo: scheduleRepo,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки на бронирование.
// Проверка вместимости и вставка выполняются в сериализуемой транзакции,
// чтобы конкурентные заявки не превысили вместимость слота.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestBooking: user=%d, facility=%d, slot=%d, date=%s",
		req.UserID, req.FacilityID, req.SlotID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RequestBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата не в прошлом (сегодня - допустимо)
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("RequestBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем объект
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("RequestBooking: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("RequestBooking: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	var result *domain.Booking
	var slot *domain.Slot

	// 4. Проверка вместимости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем расписание объекта и ищем слот
		schedule, err := uc.scheduleRepo.GetByID(txCtx, facility.ScheduleID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Error("RequestBooking: schedule id=%d of facility id=%d not found",
					facility.ScheduleID, facility.ID)
				return fmt.Errorf("%w: facility schedule not found", ErrInternal)
			}
			uc.logger.Error("RequestBooking: failed to get schedule id=%d: %v", facility.ScheduleID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		slot = schedule.FindSlot(req.SlotID)
		if slot == nil {
			uc.logger.Warn("RequestBooking: slot id=%d not found in schedule id=%d", req.SlotID, schedule.ID)
			return ErrSlotNotFound
		}

		// 4.2. Получаем активные бронирования на (объект, слот, дата) с блокировкой (FOR UPDATE)
		filter := domain.FacilityBookingsFilter{
			FacilityID:      req.FacilityID,
			SlotID:          ptr.Ptr(req.SlotID),
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByFacilityWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("RequestBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.3. Проверяем остаток вместимости.
		// При Capacity = 3 допустимо taken = 0, 1, 2; при taken >= 3 слот занят.
		taken := countActiveBookings(bookings)
		if taken >= slot.Capacity {
			uc.logger.Warn("RequestBooking: slot id=%d on %s is full, %d/%d spots taken",
				req.SlotID, req.Date.Format(domain.DateFormat), taken, slot.Capacity)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("RequestBooking: slot available, %d/%d spots taken", taken, slot.Capacity)

		// 4.4. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			UserID:      req.UserID,
			FacilityID:  req.FacilityID,
			ScheduleID:  schedule.ID,
			SlotID:      slot.ID,
			BookingDate: req.Date,
			Description: req.Description,
			Status:      domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("RequestBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RequestBooking: successfully created booking id=%d", result.ID)

	// 5. Публикуем событие после фиксации транзакции (best-effort)
	uc.publishRequested(ctx, result)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		FacilityID:  result.FacilityID,
		ScheduleID:  result.ScheduleID,
		SlotID:      result.SlotID,
		BookingDate: result.BookingDate,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Status:      string(result.Status),
		Description: result.Description,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// publishRequested публикует событие booking.requested
func (uc *UseCase) publishRequested(ctx context.Context, booking *domain.Booking) {
	event := events.BookingEvent{
		BookingID:   booking.ID,
		FacilityID:  booking.FacilityID,
		SlotID:      booking.SlotID,
		UserID:      booking.UserID,
		BookingDate: booking.BookingDate.Format(domain.DateFormat),
		Status:      string(booking.Status),
		ActorID:     booking.UserID,
		OccurredAt:  uc.timeProvider.Now(),
	}

	if err := uc.publisher.PublishBookingEvent(ctx, events.KeyBookingRequested, event); err != nil {
		// Событие не критично для результата операции
		uc.logger.Error("RequestBooking: failed to publish event for booking id=%d: %v", booking.ID, err)
	}
}
