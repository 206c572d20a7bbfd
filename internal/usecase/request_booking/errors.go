package request_booking

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("request_booking: facility not found")

	// ErrSlotNotFound возвращается, когда слот не найден в расписании объекта
	ErrSlotNotFound = errors.New("request_booking: slot not found in facility schedule")

	// ErrInvalidDate возвращается при попытке бронирования на прошедшую дату
	ErrInvalidDate = errors.New("request_booking: invalid booking date")

	// ErrSlotNotAvailable возвращается, когда вместимость слота на дату исчерпана
	ErrSlotNotAvailable = errors.New("request_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("request_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_booking: internal error")
)
