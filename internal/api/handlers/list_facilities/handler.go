package list_facilities

import (
	"net/http"
	"strconv"

	"github.com/m04kA/FMS-BookingService/internal/api/handlers"
)

const msgInvalidBuildingID = "некорректный ID здания"

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

// Handle GET /api/v1/facilities?buildingId=1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var buildingID *int64
	if raw := r.URL.Query().Get("buildingId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /facilities - Invalid building ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidBuildingID)
			return
		}
		buildingID = &parsed
	}

	result, err := h.service.List(r.Context(), buildingID)
	if err != nil {
		h.logger.Error("GET /facilities - Failed to list facilities: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities - Facilities listed successfully: count=%d", len(result.Facilities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
