package check_availability

import (
	"github.com/m04kA/FMS-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/FMS-BookingService/internal/usecase/check_availability"
)

// AvailableSlotResponse HTTP модель доступности слота
type AvailableSlotResponse struct {
	SlotID            int64  `json:"slotId"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Capacity          int    `json:"capacity"`
	CapacityRemaining int    `json:"capacityRemaining"`
	Available         bool   `json:"available"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	FacilityID int64                   `json:"facilityId"`
	Date       string                  `json:"date"`
	Slots      []AvailableSlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	slots := make([]AvailableSlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, AvailableSlotResponse{
			SlotID:            slot.SlotID,
			StartTime:         slot.StartTime.String(),
			EndTime:           slot.EndTime.String(),
			Capacity:          slot.Capacity,
			CapacityRemaining: slot.CapacityRemaining,
			Available:         slot.Available,
		})
	}

	return &AvailabilityResponse{
		FacilityID: resp.FacilityID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
