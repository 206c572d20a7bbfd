package create_schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/FMS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	if len(req.Name) > domain.MaxScheduleNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxScheduleNameLength)
	}

	if len(req.Slots) == 0 {
		return fmt.Errorf("%w: schedule must have at least one slot", ErrInvalidInput)
	}

	if len(req.Slots) > domain.MaxSlotsPerSchedule {
		return fmt.Errorf("%w: schedule must not have more than %d slots", ErrInvalidInput, domain.MaxSlotsPerSchedule)
	}

	for i, slot := range req.Slots {
		if err := validateSlot(i, slot); err != nil {
			return err
		}
	}

	return nil
}

// validateSlot валидирует отдельный слот запроса
func validateSlot(idx int, slot SlotInput) error {
	if err := slot.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: slot %d: invalid startTime format: %v", ErrInvalidInput, idx, err)
	}

	if err := slot.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: slot %d: invalid endTime format: %v", ErrInvalidInput, idx, err)
	}

	if !slot.StartTime.IsBefore(slot.EndTime) {
		return fmt.Errorf("%w: slot %d: startTime must be before endTime", ErrInvalidInput, idx)
	}

	if slot.Capacity < domain.MinSlotCapacity || slot.Capacity > domain.MaxSlotCapacity {
		return fmt.Errorf("%w: slot %d: capacity must be between %d and %d",
			ErrInvalidInput, idx, domain.MinSlotCapacity, domain.MaxSlotCapacity)
	}

	return nil
}

// validateNoOverlaps проверяет, что слоты не пересекаются по времени.
// Слоты сортируются по времени начала (стабильно), после чего достаточно
// проверить каждую соседнюю пару: конец предыдущего не позже начала следующего.
// Соприкасающиеся границы (09:00-10:00 и 10:00-11:00) пересечением не считаются.
// Возвращает отсортированную копию слотов.
func validateNoOverlaps(slots []SlotInput) ([]SlotInput, error) {
	sorted := make([]SlotInput, len(slots))
	copy(sorted, slots)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.IsBefore(sorted[j].StartTime)
	})

	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1]
		curr := sorted[i]
		if curr.StartTime.IsBefore(prev.EndTime) {
			return nil, fmt.Errorf("%w: %s-%s overlaps with %s-%s",
				ErrSlotsOverlap, prev.StartTime, prev.EndTime, curr.StartTime, curr.EndTime)
		}
	}

	return sorted, nil
}
