package decide_booking

import (
	"github.com/m04kA/FMS-BookingService/internal/service/bookings/models"
)

// DecideBookingRequest HTTP request model
type DecideBookingRequest struct {
	Decision string  `json:"decision"` // approved | rejected
	Comment  *string `json:"comment,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *DecideBookingRequest) ToServiceRequest(deciderID int64) *models.DecideBookingRequest {
	return &models.DecideBookingRequest{
		DeciderID: deciderID,
		Decision:  r.Decision,
		Comment:   r.Comment,
	}
}
