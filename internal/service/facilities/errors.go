package facilities

import "errors"

var (
	// ErrFacilityNotFound объект не найден
	ErrFacilityNotFound = errors.New("facilities.service: facility not found")

	// ErrScheduleNotFound расписание не найдено
	ErrScheduleNotFound = errors.New("facilities.service: schedule not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("facilities.service: invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("facilities.service: internal error")
)
