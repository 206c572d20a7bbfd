package attach_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FMS-BookingService/internal/api/handlers"
	"github.com/m04kA/FMS-BookingService/internal/service/facilities"
)

const (
	msgInvalidFacilityID  = "некорректный ID объекта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgFacilityNotFound   = "объект не найден"
	msgScheduleNotFound   = "расписание не найдено"
)

// AttachScheduleRequest HTTP request model
type AttachScheduleRequest struct {
	ScheduleID int64 `json:"scheduleId"`
}

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/facilities/{facilityId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /facilities/{id}/schedule - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	var req AttachScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /facilities/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.AttachSchedule(r.Context(), facilityID, req.ScheduleID); err != nil {
		switch {
		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("PUT /facilities/{id}/schedule - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, facilities.ErrScheduleNotFound):
			h.logger.Warn("PUT /facilities/{id}/schedule - Schedule not found: schedule_id=%d", req.ScheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("PUT /facilities/{id}/schedule - Failed to attach schedule: facility_id=%d, schedule_id=%d, error=%v",
				facilityID, req.ScheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /facilities/{id}/schedule - Schedule attached successfully: facility_id=%d, schedule_id=%d",
		facilityID, req.ScheduleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
