package check_availability

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("check_availability: facility not found")

	// ErrSlotNotFound возвращается, когда запрошенный слот не найден в расписании объекта
	ErrSlotNotFound = errors.New("check_availability: slot not found in facility schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
