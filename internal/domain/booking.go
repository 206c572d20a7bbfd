package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a request to occupy a slot of a facility on a calendar date.
// Bookings are never deleted: cancellation and rejection are statuses,
// so the full decision history stays in the table.
type Booking struct {
	ID          int64
	FacilityID  int64
	ScheduleID  int64
	SlotID      int64
	UserID      int64 // ID запросившего пользователя
	BookingDate time.Time
	Description *string
	Status      BookingStatus

	// Решение модератора
	DecidedBy       *int64
	DecidedAt       *time.Time
	DecisionComment *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConsumesCapacity returns true if the booking counts against slot capacity.
// Only pending and approved bookings occupy a spot.
func (b *Booking) ConsumesCapacity() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsPending returns true if the booking is awaiting a decision
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsDecided returns true if a moderator has already acted on the booking
func (b *Booking) IsDecided() bool {
	return b.Status != StatusPending
}

// CanBeCancelled returns true if the booking may still be cancelled.
// Approved bookings are cancellable (post-approval cancellation);
// rejected and cancelled ones are terminal.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// FacilityBookingsFilter фильтр для получения бронирований объекта
type FacilityBookingsFilter struct {
	FacilityID      int64          // Обязательный параметр
	SlotID          *int64         // Фильтр по слоту (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отклонённые и отменённые бронирования
}
