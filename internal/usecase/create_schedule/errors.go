package create_schedule

import "errors"

var (
	// ErrSlotsOverlap возвращается, когда слоты расписания пересекаются по времени
	ErrSlotsOverlap = errors.New("create_schedule: slots overlap")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_schedule: internal error")
)
