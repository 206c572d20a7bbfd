package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrNotPending возвращается, когда решение пытаются записать
	// по бронированию, уже вышедшему из статуса pending
	ErrNotPending = errors.New("booking.repository: booking is not pending")

	// ErrNotCancellable возвращается, когда бронирование уже отклонено или отменено
	ErrNotCancellable = errors.New("booking.repository: booking cannot be cancelled")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
