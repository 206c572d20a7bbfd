package get_facility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FMS-BookingService/internal/api/handlers"
	"github.com/m04kA/FMS-BookingService/internal/service/facilities"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgNotFound          = "объект не найден"
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

// Handle GET /api/v1/facilities/{facilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id} - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	facility, err := h.service.GetByID(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id} - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /facilities/{id} - Failed to get facility: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id} - Facility retrieved successfully: facility_id=%d", facilityID)
	handlers.RespondJSON(w, http.StatusOK, facility)
}
