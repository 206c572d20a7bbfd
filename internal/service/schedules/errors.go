package schedules

import "errors"

var (
	// ErrScheduleNotFound расписание не найдено
	ErrScheduleNotFound = errors.New("schedules.service: schedule not found")

	// ErrSlotNotFound слот не найден
	ErrSlotNotFound = errors.New("schedules.service: slot not found")

	// ErrSlotsOverlap слот пересекается с существующим слотом расписания
	ErrSlotsOverlap = errors.New("schedules.service: slots overlap")

	// ErrSlotInUse слот используется активными бронированиями
	ErrSlotInUse = errors.New("schedules.service: slot is in use")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("schedules.service: invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("schedules.service: internal error")
)
