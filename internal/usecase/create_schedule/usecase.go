package create_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/FMS-BookingService/internal/domain"
)

// UseCase use case для создания расписания со слотами
type UseCase struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания расписания.
// Расписание со всеми слотами создается атомарно: при любой ошибке
// не остается частично созданного расписания.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: name=%q, slots=%d", req.Name, len(req.Slots))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем отсутствие пересечений между слотами
	sorted, err := validateNoOverlaps(req.Slots)
	if err != nil {
		uc.logger.Warn("CreateSchedule: overlap check failed: %v", err)
		return nil, err
	}

	// 3. Собираем доменную модель из отсортированных слотов
	schedule := &domain.Schedule{
		Name:  req.Name,
		Slots: make([]domain.Slot, 0, len(sorted)),
	}
	for _, slot := range sorted {
		schedule.Slots = append(schedule.Slots, domain.Slot{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Capacity:  slot.Capacity,
		})
	}

	// 4. Сохраняем расписание и слоты в одной транзакции
	var created *domain.Schedule
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		result, err := uc.scheduleRepo.Create(txCtx, schedule)
		if err != nil {
			uc.logger.Error("CreateSchedule: failed to create schedule: %v", err)
			return fmt.Errorf("%w: failed to create schedule: %v", ErrInternal, err)
		}
		created = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateSchedule: successfully created schedule id=%d with %d slots", created.ID, len(created.Slots))

	return toResponse(created), nil
}

// toResponse конвертирует доменную модель в response
func toResponse(schedule *domain.Schedule) *Response {
	slots := make([]SlotResponse, 0, len(schedule.Slots))
	for _, slot := range schedule.Slots {
		slots = append(slots, SlotResponse{
			ID:        slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Capacity:  slot.Capacity,
		})
	}

	return &Response{
		ID:        schedule.ID,
		Name:      schedule.Name,
		Slots:     slots,
		CreatedAt: schedule.CreatedAt,
		UpdatedAt: schedule.UpdatedAt,
	}
}
