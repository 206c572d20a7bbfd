package models

import (
	"time"

	"github.com/m04kA/FMS-BookingService/internal/domain"
)

// CreateFacilityRequest запрос на создание объекта
type CreateFacilityRequest struct {
	Name       string
	BuildingID int64
	ScheduleID int64
}

// FacilityResponse DTO объекта
type FacilityResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	BuildingID int64     `json:"buildingId"`
	ScheduleID int64     `json:"scheduleId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FacilityListResponse список объектов
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// ToDomainFacility конвертирует запрос в domain.Facility
func (r *CreateFacilityRequest) ToDomainFacility() *domain.Facility {
	return &domain.Facility{
		Name:       r.Name,
		BuildingID: r.BuildingID,
		ScheduleID: r.ScheduleID,
	}
}

// FromDomainFacility конвертирует domain.Facility в FacilityResponse
func FromDomainFacility(facility *domain.Facility) *FacilityResponse {
	return &FacilityResponse{
		ID:         facility.ID,
		Name:       facility.Name,
		BuildingID: facility.BuildingID,
		ScheduleID: facility.ScheduleID,
		CreatedAt:  facility.CreatedAt,
		UpdatedAt:  facility.UpdatedAt,
	}
}

// FromDomainFacilityList конвертирует список domain.Facility в FacilityListResponse
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	result := make([]FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		result = append(result, *FromDomainFacility(f))
	}
	return &FacilityListResponse{Facilities: result}
}
