package facility

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	"github.com/m04kA/FMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FMS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с объектами бронирования
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый объект
func (r *Repository) Create(ctx context.Context, facility *domain.Facility) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("facilities").
		Columns("name", "building_id", "schedule_id").
		Values(facility.Name, facility.BuildingID, facility.ScheduleID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&facility.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	facility.CreatedAt = createdAt.Time
	facility.UpdatedAt = updatedAt.Time

	return facility, nil
}

// GetByID получает объект по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"building_id",
		"schedule_id",
		"created_at",
		"updated_at",
	).
		From("facilities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	facility, err := r.scanFacility(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan facility: %v", ErrScanRow, err)
	}

	return facility, nil
}

// List получает список объектов, опционально отфильтрованный по зданию
func (r *Repository) List(ctx context.Context, buildingID *int64) ([]*domain.Facility, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"building_id",
		"schedule_id",
		"created_at",
		"updated_at",
	).
		From("facilities").
		OrderBy("building_id ASC, name ASC")

	if buildingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"building_id": *buildingID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	facilities := make([]*domain.Facility, 0)
	for rows.Next() {
		facility, err := r.scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		facilities = append(facilities, facility)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return facilities, nil
}

// AttachSchedule привязывает к объекту другое расписание
func (r *Repository) AttachSchedule(ctx context.Context, facilityID, scheduleID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("facilities").
		Set("schedule_id", scheduleID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": facilityID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AttachSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AttachSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AttachSchedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrFacilityNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanFacility(row rowScanner) (*domain.Facility, error) {
	var facility domain.Facility
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&facility.ID,
		&facility.Name,
		&facility.BuildingID,
		&facility.ScheduleID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	facility.CreatedAt = createdAt.Time
	facility.UpdatedAt = updatedAt.Time

	return &facility, nil
}
