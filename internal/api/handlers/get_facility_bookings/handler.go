package get_facility_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/FMS-BookingService/internal/api/handlers"
	"github.com/m04kA/FMS-BookingService/internal/api/middleware"
	"github.com/m04kA/FMS-BookingService/internal/domain"
	"github.com/m04kA/FMS-BookingService/internal/service/bookings"
	"github.com/m04kA/FMS-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgInvalidSlotID     = "некорректный ID слота"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter     = "некорректные параметры фильтрации"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/bookings?slotId=&startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/bookings - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /facilities/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetFacilityBookingsRequest{
		UserID:     userID,
		FacilityID: facilityID,
	}
	query := r.URL.Query()

	if raw := query.Get("slotId"); raw != "" {
		slotID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/bookings - Invalid slot ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidSlotID)
			return
		}
		req.SlotID = &slotID
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/bookings - Invalid start date: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/bookings - Invalid end date: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		req.IncludeInactive = raw == "true"
	}

	result, err := h.service.GetFacilityBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /facilities/{id}/bookings - Access denied: facility_id=%d, user_id=%d", facilityID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/bookings - Invalid filter: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /facilities/{id}/bookings - Failed to get bookings: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/bookings - Bookings retrieved successfully: facility_id=%d, count=%d",
		facilityID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
