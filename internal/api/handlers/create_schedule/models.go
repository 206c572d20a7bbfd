package create_schedule

import (
	"time"

	createSchedule "github.com/m04kA/FMS-BookingService/internal/usecase/create_schedule"
	"github.com/m04kA/FMS-BookingService/pkg/types"
)

// SlotRequest HTTP модель слота в запросе
type SlotRequest struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:00"
	Capacity  int    `json:"capacity"`
}

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	Name  string        `json:"name"`
	Slots []SlotRequest `json:"slots"`
}

// SlotResponse HTTP модель слота в ответе
type SlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Capacity  int    `json:"capacity"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Slots     []SlotResponse `json:"slots"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateScheduleRequest) ToUseCaseRequest() *createSchedule.Request {
	slots := make([]createSchedule.SlotInput, 0, len(r.Slots))
	for _, slot := range r.Slots {
		slots = append(slots, createSchedule.SlotInput{
			StartTime: types.TimeString(slot.StartTime),
			EndTime:   types.TimeString(slot.EndTime),
			Capacity:  slot.Capacity,
		})
	}

	return &createSchedule.Request{
		Name:  r.Name,
		Slots: slots,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSchedule.Response) *ScheduleResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:        slot.ID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Capacity:  slot.Capacity,
		})
	}

	return &ScheduleResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Slots:     slots,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
