package request_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/FMS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description must not exceed %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом.
// Бронирование на сегодня допустимо.
func validateDate(bookingDate, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня.
// Время внутри суток не учитывается. Обе даты приводятся к UTC:
// дата бронирования парсится как UTC-полночь, и граница "сегодня"
// должна совпадать с ней независимо от часового пояса сервера.
func isDateInPast(date, now time.Time) bool {
	date = date.UTC()
	now = now.UTC()
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

// countActiveBookings подсчитывает бронирования, занимающие вместимость слота.
// Вместимость занимают только pending и approved бронирования.
func countActiveBookings(bookings []*domain.Booking) int {
	count := 0
	for _, booking := range bookings {
		if booking.ConsumesCapacity() {
			count++
		}
	}
	return count
}
