package request_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/FMS-BookingService/internal/api/handlers"
	"github.com/m04kA/FMS-BookingService/internal/api/middleware"
	requestBooking "github.com/m04kA/FMS-BookingService/internal/usecase/request_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgFacilityNotFound   = "объект не найден"
	msgSlotNotFound       = "слот не найден"
	msgDateInPast         = "дата бронирования уже прошла"
	msgSlotNotAvailable   = "на выбранную дату в слоте нет свободных мест"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase RequestBookingUseCase
	logger  Logger
}

func NewHandler(useCase RequestBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RequestBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, requestBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, facility_id=%d, slot_id=%d, date=%s",
				userID, req.FacilityID, req.SlotID, req.Date)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, requestBooking.ErrFacilityNotFound):
			h.logger.Warn("POST /bookings - Facility not found: facility_id=%d", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, requestBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: facility_id=%d, slot_id=%d", req.FacilityID, req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, requestBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in past: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, requestBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to request booking: user_id=%d, facility_id=%d, error=%v",
				userID, req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking requested successfully: booking_id=%d, user_id=%d, facility_id=%d",
		result.ID, userID, req.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
