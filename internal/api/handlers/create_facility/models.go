package create_facility

import (
	"github.com/m04kA/FMS-BookingService/internal/service/facilities/models"
)

// CreateFacilityRequest HTTP request model
type CreateFacilityRequest struct {
	Name       string `json:"name"`
	BuildingID int64  `json:"buildingId"`
	ScheduleID int64  `json:"scheduleId"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateFacilityRequest) ToServiceRequest() *models.CreateFacilityRequest {
	return &models.CreateFacilityRequest{
		Name:       r.Name,
		BuildingID: r.BuildingID,
		ScheduleID: r.ScheduleID,
	}
}
