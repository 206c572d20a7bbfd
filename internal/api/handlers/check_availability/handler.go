package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/FMS-BookingService/internal/api/handlers"
	"github.com/m04kA/FMS-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/FMS-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlotID     = "некорректный ID слота"
	msgFacilityNotFound  = "объект не найден"
	msgSlotNotFound      = "слот не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/availability?date=2025-09-01&slotId=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/availability - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var slotID *int64
	if raw := r.URL.Query().Get("slotId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/availability - Invalid slot ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidSlotID)
			return
		}
		slotID = &parsed
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		FacilityID: facilityID,
		Date:       date,
		SlotID:     slotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/availability - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, checkAvailability.ErrSlotNotFound):
			h.logger.Warn("GET /facilities/{id}/availability - Slot not found: facility_id=%d, slot_id=%v", facilityID, slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/availability - Invalid input: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidFacilityID)

		default:
			h.logger.Error("GET /facilities/{id}/availability - Failed to check availability: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/availability - Availability retrieved: facility_id=%d, slots=%d",
		facilityID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
