package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/FMS-BookingService/internal/domain"
	"github.com/m04kA/FMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FMS-BookingService/pkg/psqlbuilder"
)

// bookingColumns полный список колонок таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"facility_id",
	"schedule_id",
	"slot_id",
	"user_id",
	"booking_date",
	"description",
	"status",
	"decided_by",
	"decided_at",
	"decision_comment",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Создание бронирования с проверкой ёмкости слота обязано выполняться
// в транзакции - см. usecase request_booking.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"facility_id",
			"schedule_id",
			"slot_id",
			"user_id",
			"booking_date",
			"description",
			"status",
		).
		Values(
			booking.FacilityID,
			booking.ScheduleID,
			booking.SlotID,
			booking.UserID,
			booking.BookingDate,
			booking.Description,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, created_at DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByFacilityWithFilter получает бронирования объекта с гибкой фильтрацией.
// Поддерживает фильтрацию по слоту, периоду, статусу и включению неактивных
// бронирований.
//
// Если вызов происходит внутри транзакции и фильтр сужен до конкретного слота
// и конкретной даты, строки блокируются через FOR UPDATE - это основа проверки
// ёмкости при создании бронирования: конкурирующие транзакции не смогут
// одновременно пересчитать один и тот же кортеж (объект, слот, дата).
func (r *Repository) GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"facility_id": filter.FacilityID})

	// Фильтрация по слоту (если указан)
	if filter.SlotID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"slot_id": *filter.SlotID})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)

	if singleDate {
		selectBuilder = selectBuilder.OrderBy("slot_id ASC, created_at ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, created_at DESC")
	}

	// Блокировка строк для пересчёта ёмкости внутри транзакции
	if dbmetrics.IsInTransaction(ctx) && singleDate && filter.SlotID != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CountForSlotExists возвращает true, если по слоту есть хотя бы одно бронирование.
// Используется при удалении слота из расписания.
func (r *Repository) CountForSlotExists(ctx context.Context, slotID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CountForSlotExists - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: CountForSlotExists - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// UpdateDecision записывает решение модератора по бронированию.
// Статус-guard в WHERE гарантирует, что решение применяется только к pending
// бронированию: при гонке двух модераторов выигрывает ровно один.
func (r *Repository) UpdateDecision(
	ctx context.Context,
	id int64,
	status domain.BookingStatus,
	decidedBy int64,
	decidedAt time.Time,
	comment *string,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("decided_by", decidedBy).
		Set("decided_at", decidedAt).
		Set("decision_comment", comment).
		Set("updated_at", decidedAt).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDecision - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDecision - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDecision - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotPending
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины.
// Отменить можно только pending или approved бронирование.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", cancelledAt).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotCancellable
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в модель бронирования
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.FacilityID,
		&booking.ScheduleID,
		&booking.SlotID,
		&booking.UserID,
		&booking.BookingDate,
		&booking.Description,
		&booking.Status,
		&booking.DecidedBy,
		&booking.DecidedAt,
		&booking.DecisionComment,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
