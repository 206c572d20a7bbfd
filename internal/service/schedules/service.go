package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/FMS-BookingService/internal/service/schedules/models"
	"github.com/m04kA/FMS-BookingService/pkg/types"
)

// Service сервис управления расписаниями и их слотами
type Service struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// GetByID получает расписание со всеми слотами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByID: fetching schedule id=%d", id)

	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched schedule id=%d with %d slots", id, len(schedule.Slots))
	return models.FromDomainSchedule(schedule), nil
}

// AddSlot добавляет слот в существующее расписание.
// Новый слот не должен пересекаться ни с одним существующим слотом;
// соприкасающиеся границы (конец одного == начало другого) пересечением не считаются.
func (s *Service) AddSlot(ctx context.Context, scheduleID int64, req *models.AddSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("AddSlot: adding slot %s-%s to schedule id=%d", req.StartTime, req.EndTime, scheduleID)

	slot, err := s.buildSlot(scheduleID, req)
	if err != nil {
		s.logger.Warn("AddSlot: invalid slot for schedule id=%d: %v", scheduleID, err)
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("AddSlot: schedule id=%d not found", scheduleID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("AddSlot: repository error for schedule id=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: AddSlot - repository error: %v", ErrInternal, err)
	}

	if len(schedule.Slots) >= domain.MaxSlotsPerSchedule {
		s.logger.Warn("AddSlot: schedule id=%d already has %d slots", scheduleID, len(schedule.Slots))
		return nil, fmt.Errorf("%w: schedule has too many slots", ErrInvalidInput)
	}

	// Проверяем пересечение с каждым существующим слотом
	for i := range schedule.Slots {
		if slot.Overlaps(&schedule.Slots[i]) {
			existing := &schedule.Slots[i]
			s.logger.Warn("AddSlot: slot %s-%s overlaps with slot id=%d (%s-%s) in schedule id=%d",
				slot.StartTime, slot.EndTime, existing.ID, existing.StartTime, existing.EndTime, scheduleID)
			return nil, fmt.Errorf("%w: %s-%s overlaps with %s-%s",
				ErrSlotsOverlap, slot.StartTime, slot.EndTime, existing.StartTime, existing.EndTime)
		}
	}

	created, err := s.scheduleRepo.AddSlot(ctx, slot)
	if err != nil {
		s.logger.Error("AddSlot: failed to persist slot for schedule id=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: AddSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSlot: successfully added slot id=%d to schedule id=%d", created.ID, scheduleID)
	return models.FromDomainSlot(created), nil
}

// RemoveSlot удаляет слот из расписания.
// Слот с активными бронированиями (pending или approved) удалить нельзя.
func (s *Service) RemoveSlot(ctx context.Context, scheduleID, slotID int64) error {
	s.logger.Info("RemoveSlot: removing slot id=%d from schedule id=%d", slotID, scheduleID)

	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("RemoveSlot: schedule id=%d not found", scheduleID)
			return ErrScheduleNotFound
		}
		s.logger.Error("RemoveSlot: repository error for schedule id=%d: %v", scheduleID, err)
		return fmt.Errorf("%w: RemoveSlot - repository error: %v", ErrInternal, err)
	}

	if schedule.FindSlot(slotID) == nil {
		s.logger.Warn("RemoveSlot: slot id=%d not found in schedule id=%d", slotID, scheduleID)
		return ErrSlotNotFound
	}

	inUse, err := s.bookingRepo.CountForSlotExists(ctx, slotID)
	if err != nil {
		s.logger.Error("RemoveSlot: failed to check bookings for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: RemoveSlot - repository error: %v", ErrInternal, err)
	}
	if inUse {
		s.logger.Warn("RemoveSlot: slot id=%d has active bookings", slotID)
		return ErrSlotInUse
	}

	if err := s.scheduleRepo.DeleteSlot(ctx, slotID); err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("RemoveSlot: failed to delete slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: RemoveSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveSlot: successfully removed slot id=%d from schedule id=%d", slotID, scheduleID)
	return nil
}

// buildSlot валидирует запрос и собирает domain.Slot
func (s *Service) buildSlot(scheduleID int64, req *models.AddSlotRequest) (*domain.Slot, error) {
	startTime := types.TimeString(req.StartTime)
	if err := startTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid start_time %q", ErrInvalidInput, req.StartTime)
	}

	endTime := types.TimeString(req.EndTime)
	if err := endTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid end_time %q", ErrInvalidInput, req.EndTime)
	}

	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: start_time must be before end_time", ErrInvalidInput)
	}

	if req.Capacity < domain.MinSlotCapacity || req.Capacity > domain.MaxSlotCapacity {
		return nil, fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinSlotCapacity, domain.MaxSlotCapacity)
	}

	return &domain.Slot{
		ScheduleID: scheduleID,
		StartTime:  startTime,
		EndTime:    endTime,
		Capacity:   req.Capacity,
	}, nil
}
