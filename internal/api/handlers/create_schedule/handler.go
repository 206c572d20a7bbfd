package create_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/FMS-BookingService/internal/api/handlers"
	createSchedule "github.com/m04kA/FMS-BookingService/internal/usecase/create_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotsOverlap       = "слоты расписания пересекаются по времени"
	msgInvalidInput       = "некорректные данные расписания"
)

type Handler struct {
	useCase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createSchedule.ErrSlotsOverlap):
			h.logger.Warn("POST /schedules - Slots overlap: name=%q, error=%v", req.Name, err)
			handlers.RespondConflict(w, msgSlotsOverlap)

		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedule created successfully: schedule_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
