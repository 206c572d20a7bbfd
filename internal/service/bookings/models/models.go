package models

import (
	"errors"
	"time"

	"github.com/m04kA/FMS-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDecision возвращается при некорректном решении модератора
	ErrInvalidDecision = errors.New("invalid decision")
)

// Request модели

// DecideBookingRequest запрос на решение по бронированию
type DecideBookingRequest struct {
	DeciderID int64   `json:"deciderId"`
	Decision  string  `json:"decision"` // approved | rejected
	Comment   *string `json:"comment,omitempty"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetFacilityBookingsRequest запрос на получение бронирований объекта
type GetFacilityBookingsRequest struct {
	UserID          int64      `json:"userId"`
	FacilityID      int64      `json:"facilityId"`
	SlotID          *int64     `json:"slotId,omitempty"`          // Фильтр по слоту (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отклонённые и отменённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetFacilityBookingsRequest) ToDomainFilter() (domain.FacilityBookingsFilter, error) {
	filter := domain.FacilityBookingsFilter{
		FacilityID:      r.FacilityID,
		SlotID:          r.SlotID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64   `json:"id"`
	FacilityID  int64   `json:"facilityId"`
	ScheduleID  int64   `json:"scheduleId"`
	SlotID      int64   `json:"slotId"`
	UserID      int64   `json:"userId"`
	BookingDate string  `json:"bookingDate"` // "2025-08-25"
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`

	DecidedBy       *int64  `json:"decidedBy,omitempty"`
	DecidedAt       *string `json:"decidedAt,omitempty"` // ISO 8601 format
	DecisionComment *string `json:"decisionComment,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		FacilityID:         b.FacilityID,
		ScheduleID:         b.ScheduleID,
		SlotID:             b.SlotID,
		UserID:             b.UserID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		Description:        b.Description,
		Status:             string(b.Status),
		DecidedBy:          b.DecidedBy,
		DecisionComment:    b.DecisionComment,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.DecidedAt != nil {
		decidedStr := b.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedStr
	}
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// ToDecisionStatus конвертирует строку решения в статус.
// Решением может быть только approved или rejected.
func ToDecisionStatus(decision string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(decision) {
	case domain.StatusApproved:
		return domain.StatusApproved, nil
	case domain.StatusRejected:
		return domain.StatusRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}
