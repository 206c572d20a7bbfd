package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	facilityRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/facility"
	scheduleRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/schedule"
)

// UseCase use case для проверки доступности слотов объекта на дату
type UseCase struct {
	bookingRepo  BookingRepository
	facilityRepo FacilityRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityRepo FacilityRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case проверки доступности.
// Для каждого слота расписания объекта возвращает остаток вместимости
// на указанную дату. Для прошедшей даты возвращается пустой список:
// прошедшие даты не бронируются, но и ошибкой не считаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: facility=%d, date=%s, slot=%v",
		req.FacilityID, req.Date.Format(domain.DateFormat), req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CheckAvailability: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Получаем расписание объекта
	schedule, err := uc.scheduleRepo.GetByID(ctx, facility.ScheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("CheckAvailability: schedule id=%d of facility id=%d not found",
				facility.ScheduleID, facility.ID)
			return nil, fmt.Errorf("%w: facility schedule not found", ErrInternal)
		}
		uc.logger.Error("CheckAvailability: failed to get schedule id=%d: %v", facility.ScheduleID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Определяем слоты, по которым считаем доступность
	slots := schedule.Slots
	if req.SlotID != nil {
		slot := schedule.FindSlot(*req.SlotID)
		if slot == nil {
			uc.logger.Warn("CheckAvailability: slot id=%d not found in schedule id=%d", *req.SlotID, schedule.ID)
			return nil, ErrSlotNotFound
		}
		slots = []domain.Slot{*slot}
	}

	// 5. Прошедшая дата - слотов для бронирования нет
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Info("CheckAvailability: date %s is in the past, no available slots",
			req.Date.Format(domain.DateFormat))
		return &Response{
			FacilityID: req.FacilityID,
			Date:       req.Date,
			Slots:      []AvailableSlot{},
		}, nil
	}

	// 6. Получаем активные бронирования объекта на дату
	filter := domain.FacilityBookingsFilter{
		FacilityID:      req.FacilityID,
		SlotID:          req.SlotID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Считаем занятость по каждому слоту
	takenBySlot := make(map[int64]int, len(slots))
	for _, booking := range bookings {
		if booking.ConsumesCapacity() {
			takenBySlot[booking.SlotID]++
		}
	}

	result := make([]AvailableSlot, 0, len(slots))
	for _, slot := range slots {
		remaining := slot.Capacity - takenBySlot[slot.ID]
		if remaining < 0 {
			remaining = 0
		}
		result = append(result, AvailableSlot{
			SlotID:            slot.ID,
			StartTime:         slot.StartTime,
			EndTime:           slot.EndTime,
			Capacity:          slot.Capacity,
			CapacityRemaining: remaining,
			Available:         remaining > 0,
		})
	}

	uc.logger.Info("CheckAvailability: facility=%d, date=%s, %d slots",
		req.FacilityID, req.Date.Format(domain.DateFormat), len(result))

	return &Response{
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Slots:      result,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.SlotID != nil && *req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня.
// Обе даты приводятся к UTC: запрошенная дата парсится как UTC-полночь,
// и граница "сегодня" не должна зависеть от часового пояса сервера.
func isDateInPast(date, now time.Time) bool {
	date = date.UTC()
	now = now.UTC()
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
