package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	"github.com/m04kA/FMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FMS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с расписаниями и их слотами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает расписание вместе со слотами.
// Вызывается только внутри транзакции (см. usecase create_schedule):
// расписание без слотов или с частью слотов в базе появиться не должно.
func (r *Repository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedules").
		Columns("name").
		Values(schedule.Name).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	for i := range schedule.Slots {
		schedule.Slots[i].ScheduleID = schedule.ID
		if _, err := r.AddSlot(ctx, &schedule.Slots[i]); err != nil {
			return nil, err
		}
	}

	return schedule, nil
}

// GetByID получает расписание по ID вместе со всеми слотами.
// Слоты возвращаются в порядке времени начала.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.Schedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.Name,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	slots, err := r.listSlots(ctx, id)
	if err != nil {
		return nil, err
	}
	schedule.Slots = slots

	return &schedule, nil
}

// GetSlotByID получает слот по ID
func (r *Repository) GetSlotByID(ctx context.Context, slotID int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"schedule_id",
		"start_time",
		"end_time",
		"capacity",
		"created_at",
		"updated_at",
	).
		From("schedule_slots").
		Where(squirrel.Eq{"id": slotID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := r.scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// AddSlot добавляет слот в расписание.
// Валидация пересечений с существующими слотами - ответственность вызывающего
// слоя (usecase/service), здесь только вставка.
func (r *Repository) AddSlot(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_slots").
		Columns("schedule_id", "start_time", "end_time", "capacity").
		Values(slot.ScheduleID, slot.StartTime, slot.EndTime, slot.Capacity).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddSlot - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: AddSlot - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// DeleteSlot удаляет слот из расписания.
// Проверка, что на слот нет бронирований - ответственность сервиса.
func (r *Repository) DeleteSlot(ctx context.Context, slotID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_slots").
		Where(squirrel.Eq{"id": slotID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteSlot - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteSlot - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteSlot - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// listSlots получает все слоты расписания в порядке времени начала
func (r *Repository) listSlots(ctx context.Context, scheduleID int64) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"schedule_id",
		"start_time",
		"end_time",
		"capacity",
		"created_at",
		"updated_at",
	).
		From("schedule_slots").
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		OrderBy("start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.Slot, 0)
	for rows.Next() {
		slot, err := r.scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: listSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, *slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSlot(row rowScanner) (*domain.Slot, error) {
	var slot domain.Slot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.ScheduleID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Capacity,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}
