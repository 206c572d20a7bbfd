package list_facilities

import (
	"context"

	"github.com/m04kA/FMS-BookingService/internal/service/facilities/models"
)

type FacilityService interface {
	List(ctx context.Context, buildingID *int64) (*models.FacilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
