package remove_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FMS-BookingService/internal/api/handlers"
	"github.com/m04kA/FMS-BookingService/internal/service/schedules"
)

const (
	msgInvalidScheduleID = "некорректный ID расписания"
	msgInvalidSlotID     = "некорректный ID слота"
	msgScheduleNotFound  = "расписание не найдено"
	msgSlotNotFound      = "слот не найден"
	msgSlotInUse         = "слот используется активными бронированиями"
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

// Handle DELETE /api/v1/schedules/{scheduleId}/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	scheduleID, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedules/{id}/slots/{slotId} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedules/{id}/slots/{slotId} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.RemoveSlot(r.Context(), scheduleID, slotID); err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("DELETE /schedules/{id}/slots/{slotId} - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedules.ErrSlotNotFound):
			h.logger.Warn("DELETE /schedules/{id}/slots/{slotId} - Slot not found: schedule_id=%d, slot_id=%d", scheduleID, slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, schedules.ErrSlotInUse):
			h.logger.Warn("DELETE /schedules/{id}/slots/{slotId} - Slot in use: schedule_id=%d, slot_id=%d", scheduleID, slotID)
			handlers.RespondConflict(w, msgSlotInUse)

		default:
			h.logger.Error("DELETE /schedules/{id}/slots/{slotId} - Failed to remove slot: schedule_id=%d, slot_id=%d, error=%v",
				scheduleID, slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedules/{id}/slots/{slotId} - Slot removed successfully: schedule_id=%d, slot_id=%d", scheduleID, slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
