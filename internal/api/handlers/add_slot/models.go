package add_slot

import (
	"github.com/m04kA/FMS-BookingService/internal/service/schedules/models"
)

// AddSlotRequest HTTP request model
type AddSlotRequest struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:00"
	Capacity  int    `json:"capacity"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddSlotRequest) ToServiceRequest() *models.AddSlotRequest {
	return &models.AddSlotRequest{
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Capacity:  r.Capacity,
	}
}
