package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/pgerr"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/types"
)

const table = "appointments"

var columns = []string{
	"id",
	"patient_id",
	"doctor_id",
	"connection_id",
	"appointment_date",
	"start_time",
	"end_time",
	"type",
	"reason",
	"notes",
	"status",
	"location",
	"cancel_reason",
	"cancelled_by",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись.
// Частичный уникальный индекс по (doctor_id, appointment_date, start_time) для активных статусов
// превращает гонку двух бронирований в ErrSlotTaken для проигравшего.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"patient_id",
			"doctor_id",
			"connection_id",
			"appointment_date",
			"start_time",
			"end_time",
			"type",
			"reason",
			"notes",
			"status",
			"location",
		).
		Values(
			appointment.PatientID,
			appointment.DoctorID,
			appointment.ConnectionID,
			dateOnly(appointment.Date),
			appointment.StartTime,
			appointment.EndTime,
			appointment.Type,
			appointment.Reason,
			appointment.Notes,
			appointment.Status,
			appointment.Location,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: doctor=%d date=%s start=%s",
				ErrSlotTaken, appointment.DoctorID, appointment.Date.Format(domain.DateFormat), appointment.StartTime)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// GetActiveStartTimes времена начала активных (pending, confirmed) записей врача на дату
func (r *Repository) GetActiveStartTimes(ctx context.Context, doctorID int64, date time.Time) ([]types.TimeOfDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time").
		From(table).
		Where(squirrel.Eq{
			"doctor_id":        doctorID,
			"appointment_date": dateOnly(date),
			"status":           activeStatuses(),
		}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveStartTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveStartTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	starts := make([]types.TimeOfDay, 0)
	for rows.Next() {
		var start types.TimeOfDay
		if err := rows.Scan(&start); err != nil {
			return nil, fmt.Errorf("%w: GetActiveStartTimes - scan start_time: %v", ErrScanRow, err)
		}
		starts = append(starts, start)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveStartTimes - rows error: %v", ErrScanRow, err)
	}

	return starts, nil
}

// ExistsActive проверяет, занят ли слот активной записью.
// Внутри транзакции найденная строка блокируется (FOR UPDATE).
func (r *Repository) ExistsActive(ctx context.Context, doctorID int64, date time.Time, start types.TimeOfDay) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From(table).
		Where(squirrel.Eq{
			"doctor_id":        doctorID,
			"appointment_date": dateOnly(date),
			"start_time":       start,
			"status":           activeStatuses(),
		}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActive - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActive - execute query: %w", ErrExecQuery, err)
	}

	return true, nil
}

// ListByPatient записи пациента, сначала новые (date DESC, start_time DESC)
func (r *Repository) ListByPatient(ctx context.Context, filter domain.PatientAppointmentsFilter) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"patient_id": filter.PatientID}).
		OrderBy("appointment_date DESC", "start_time DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	return r.list(ctx, "ListByPatient", selectBuilder)
}

// ListByDoctor записи врача в хронологическом порядке (date ASC, start_time ASC)
func (r *Repository) ListByDoctor(ctx context.Context, filter domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"doctor_id": filter.DoctorID}).
		OrderBy("appointment_date ASC", "start_time ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": dateOnly(*filter.Date)})
	}

	return r.list(ctx, "ListByDoctor", selectBuilder)
}

// Respond переводит запись из pending в confirmed/rejected.
// Обновление условное: если статус уже не pending, возвращает ErrStatusChanged.
func (r *Repository) Respond(ctx context.Context, id int64, status domain.AppointmentStatus, reason *string) (*domain.Appointment, error) {
	updateBuilder := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending})

	if reason != nil {
		updateBuilder = updateBuilder.Set("cancel_reason", *reason)
	}

	return r.conditionalUpdate(ctx, "Respond", updateBuilder)
}

// Cancel переводит активную запись в cancelled, сохраняя отменившего и причину.
// Обновление условное: если запись уже не активна, возвращает ErrStatusChanged.
func (r *Repository) Cancel(ctx context.Context, id, cancelledBy int64, reason string) (*domain.Appointment, error) {
	var cancelReason *string
	if reason != "" {
		cancelReason = &reason
	}

	updateBuilder := psqlbuilder.Update(table).
		Set("status", domain.StatusCancelled).
		Set("cancel_reason", cancelReason).
		Set("cancelled_by", cancelledBy).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": activeStatuses()})

	return r.conditionalUpdate(ctx, "Cancel", updateBuilder)
}

func (r *Repository) conditionalUpdate(ctx context.Context, op string, updateBuilder squirrel.UpdateBuilder) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	updated, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStatusChanged
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	return updated, nil
}

func (r *Repository) list(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appointment          domain.Appointment
		cancelReason         sql.NullString
		cancelledBy          sql.NullInt64
		cancelledAt          sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&appointment.ID,
		&appointment.PatientID,
		&appointment.DoctorID,
		&appointment.ConnectionID,
		&appointment.Date,
		&appointment.StartTime,
		&appointment.EndTime,
		&appointment.Type,
		&appointment.Reason,
		&appointment.Notes,
		&appointment.Status,
		&appointment.Location,
		&cancelReason,
		&cancelledBy,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelReason.Valid {
		appointment.CancelReason = &cancelReason.String
	}
	if cancelledBy.Valid {
		appointment.CancelledBy = &cancelledBy.Int64
	}
	if cancelledAt.Valid {
		appointment.CancelledAt = &cancelledAt.Time
	}
	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}

func activeStatuses() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

// dateOnly отбрасывает время суток, дата записи хранится как DATE
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
