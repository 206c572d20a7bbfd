package request_booking

import (
	"time"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	requestBooking "github.com/m04kA/FMS-BookingService/internal/usecase/request_booking"
)

// RequestBookingRequest HTTP request model
type RequestBookingRequest struct {
	FacilityID  int64   `json:"facilityId"`
	SlotID      int64   `json:"slotId"`
	Date        string  `json:"date"` // "2025-09-01"
	Description *string `json:"description,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	FacilityID  int64   `json:"facilityId"`
	ScheduleID  int64   `json:"scheduleId"`
	SlotID      int64   `json:"slotId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Status      string  `json:"status"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RequestBookingRequest) ToUseCaseRequest(userID int64) (*requestBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &requestBooking.Request{
		UserID:      userID,
		FacilityID:  r.FacilityID,
		SlotID:      r.SlotID,
		Date:        date,
		Description: r.Description,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		FacilityID:  resp.FacilityID,
		ScheduleID:  resp.ScheduleID,
		SlotID:      resp.SlotID,
		Date:        resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		Description: resp.Description,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
