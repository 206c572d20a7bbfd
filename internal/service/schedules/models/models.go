package models

import (
	"time"

	"github.com/m04kA/FMS-BookingService/internal/domain"
)

// AddSlotRequest запрос на добавление слота в расписание
type AddSlotRequest struct {
	StartTime string
	EndTime   string
	Capacity  int
}

// SlotResponse DTO слота
type SlotResponse struct {
	ID         int64  `json:"id"`
	ScheduleID int64  `json:"scheduleId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Capacity   int    `json:"capacity"`
}

// ScheduleResponse DTO расписания со слотами
type ScheduleResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Slots     []SlotResponse `json:"slots"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// FromDomainSlot конвертирует domain.Slot в SlotResponse
func FromDomainSlot(slot *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:         slot.ID,
		ScheduleID: slot.ScheduleID,
		StartTime:  slot.StartTime.String(),
		EndTime:    slot.EndTime.String(),
		Capacity:   slot.Capacity,
	}
}

// FromDomainSchedule конвертирует domain.Schedule в ScheduleResponse
func FromDomainSchedule(schedule *domain.Schedule) *ScheduleResponse {
	slots := make([]SlotResponse, 0, len(schedule.Slots))
	for i := range schedule.Slots {
		slots = append(slots, *FromDomainSlot(&schedule.Slots[i]))
	}

	return &ScheduleResponse{
		ID:        schedule.ID,
		Name:      schedule.Name,
		Slots:     slots,
		CreatedAt: schedule.CreatedAt,
		UpdatedAt: schedule.UpdatedAt,
	}
}
