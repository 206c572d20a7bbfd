package events

import "time"

// Routing keys для событий жизненного цикла бронирования
const (
	KeyBookingRequested = "booking.requested"
	KeyBookingApproved  = "booking.approved"
	KeyBookingRejected  = "booking.rejected"
	KeyBookingCancelled = "booking.cancelled"
)

// BookingEvent событие жизненного цикла бронирования.
// Публикуется в topic exchange; consumer (сервис уведомлений) живет отдельно.
type BookingEvent struct {
	BookingID   int64     `json:"booking_id"`
	FacilityID  int64     `json:"facility_id"`
	SlotID      int64     `json:"slot_id"`
	UserID      int64     `json:"user_id"`
	BookingDate string    `json:"booking_date"` // YYYY-MM-DD
	Status      string    `json:"status"`
	ActorID     int64     `json:"actor_id"` // кто инициировал событие
	OccurredAt  time.Time `json:"occurred_at"`
}
