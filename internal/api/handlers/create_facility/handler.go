package create_facility

import (
	"errors"
	"net/http"

	"github.com/m04kA/FMS-BookingService/internal/api/handlers"
	"github.com/m04kA/FMS-BookingService/internal/service/facilities"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgScheduleNotFound   = "расписание не найдено"
	msgInvalidInput       = "некорректные данные объекта"
)

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

// Handle POST /api/v1/facilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateFacilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /facilities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	facility, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrScheduleNotFound):
			h.logger.Warn("POST /facilities - Schedule not found: schedule_id=%d", req.ScheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, facilities.ErrInvalidInput):
			h.logger.Warn("POST /facilities - Invalid input: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /facilities - Failed to create facility: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /facilities - Facility created successfully: facility_id=%d", facility.ID)
	handlers.RespondJSON(w, http.StatusCreated, facility)
}
