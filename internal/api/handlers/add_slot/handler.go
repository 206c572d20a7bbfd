package add_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FMS-BookingService/internal/api/handlers"
	"github.com/m04kA/FMS-BookingService/internal/service/schedules"
)

const (
	msgInvalidScheduleID  = "некорректный ID расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgScheduleNotFound   = "расписание не найдено"
	msgSlotsOverlap       = "слот пересекается с существующим слотом расписания"
	msgInvalidInput       = "некорректные данные слота"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules/{scheduleId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleID, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /schedules/{id}/slots - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req AddSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := h.service.AddSlot(r.Context(), scheduleID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("POST /schedules/{id}/slots - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedules.ErrSlotsOverlap):
			h.logger.Warn("POST /schedules/{id}/slots - Slots overlap: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondConflict(w, msgSlotsOverlap)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("POST /schedules/{id}/slots - Invalid input: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedules/{id}/slots - Failed to add slot: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/{id}/slots - Slot added successfully: schedule_id=%d, slot_id=%d", scheduleID, slot.ID)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
