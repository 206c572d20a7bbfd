package facilities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	facilityRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/facility"
	scheduleRepo "github.com/m04kA/FMS-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/FMS-BookingService/internal/service/facilities/models"
)

// Service сервис управления объектами бронирования
type Service struct {
	facilityRepo FacilityRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса объектов
func NewService(facilityRepo FacilityRepository, scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Create создает объект, привязанный к существующему расписанию
func (s *Service) Create(ctx context.Context, req *models.CreateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("Create: creating facility name=%q, building=%d, schedule=%d", req.Name, req.BuildingID, req.ScheduleID)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty facility name")
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	// Объект не может ссылаться на несуществующее расписание
	if err := s.checkScheduleExists(ctx, req.ScheduleID); err != nil {
		return nil, err
	}

	facility, err := s.facilityRepo.Create(ctx, req.ToDomainFacility())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created facility id=%d", facility.ID)
	return models.FromDomainFacility(facility), nil
}

// GetByID получает объект по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FacilityResponse, error) {
	s.logger.Info("GetByID: fetching facility id=%d", id)

	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetByID: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetByID: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacility(facility), nil
}

// List получает список объектов, опционально фильтруя по зданию
func (s *Service) List(ctx context.Context, buildingID *int64) (*models.FacilityListResponse, error) {
	s.logger.Info("List: fetching facilities, building=%v", buildingID)

	facilities, err := s.facilityRepo.List(ctx, buildingID)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d facilities", len(facilities))
	return models.FromDomainFacilityList(facilities), nil
}

// AttachSchedule привязывает к объекту другое расписание.
// Существующие бронирования при этом не затрагиваются.
func (s *Service) AttachSchedule(ctx context.Context, facilityID, scheduleID int64) error {
	s.logger.Info("AttachSchedule: attaching schedule id=%d to facility id=%d", scheduleID, facilityID)

	if err := s.checkScheduleExists(ctx, scheduleID); err != nil {
		return err
	}

	if err := s.facilityRepo.AttachSchedule(ctx, facilityID, scheduleID); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("AttachSchedule: facility id=%d not found", facilityID)
			return ErrFacilityNotFound
		}
		s.logger.Error("AttachSchedule: repository error for facility id=%d: %v", facilityID, err)
		return fmt.Errorf("%w: AttachSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AttachSchedule: successfully attached schedule id=%d to facility id=%d", scheduleID, facilityID)
	return nil
}

func (s *Service) checkScheduleExists(ctx context.Context, scheduleID int64) error {
	if _, err := s.scheduleRepo.GetByID(ctx, scheduleID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("checkScheduleExists: schedule id=%d not found", scheduleID)
			return ErrScheduleNotFound
		}
		s.logger.Error("checkScheduleExists: repository error for schedule id=%d: %v", scheduleID, err)
		return fmt.Errorf("%w: checkScheduleExists - repository error: %v", ErrInternal, err)
	}
	return nil
}
