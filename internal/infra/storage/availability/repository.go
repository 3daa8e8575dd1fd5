package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/psqlbuilder"
)

const table = "doctor_availability"

var columns = []string{
	"id",
	"doctor_id",
	"schedule",
	"slot_duration",
	"buffer_time",
	"location",
	"created_at",
	"updated_at",
}

// Repository репозиторий шаблонов расписания врачей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOrCreate возвращает шаблон врача, создавая defaults при первом обращении.
// Вставка идемпотентна: ON CONFLICT (doctor_id) DO NOTHING, затем чтение.
// Параллельные первые чтения не создают дубликатов.
func (r *Repository) GetOrCreate(ctx context.Context, defaults *domain.DoctorAvailability) (*domain.DoctorAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("doctor_id", "schedule", "slot_duration", "buffer_time", "location").
		Values(
			defaults.DoctorID,
			defaults.Schedule,
			defaults.SlotDuration,
			defaults.BufferTime,
			defaults.Location,
		).
		Suffix("ON CONFLICT (doctor_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - execute insert: %v", ErrExecQuery, err)
	}

	return r.GetByDoctorID(ctx, defaults.DoctorID)
}

// GetByDoctorID получает шаблон врача без создания
func (r *Repository) GetByDoctorID(ctx context.Context, doctorID int64) (*domain.DoctorAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"doctor_id": doctorID})

	// Внутри транзакции блокируем строку для read-modify-write
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - build select query: %v", ErrBuildQuery, err)
	}

	availability, err := scanAvailability(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - scan availability: %v", ErrScanRow, err)
	}

	return availability, nil
}

// Update сохраняет шаблон целиком (расписание и скалярные настройки)
func (r *Repository) Update(ctx context.Context, availability *domain.DoctorAvailability) (*domain.DoctorAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("schedule", availability.Schedule).
		Set("slot_duration", availability.SlotDuration).
		Set("buffer_time", availability.BufferTime).
		Set("location", availability.Location).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"doctor_id": availability.DoctorID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanAvailability(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan availability: %v", ErrScanRow, err)
	}

	return updated, nil
}

func scanAvailability(row *sql.Row) (*domain.DoctorAvailability, error) {
	var (
		availability         domain.DoctorAvailability
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&availability.ID,
		&availability.DoctorID,
		&availability.Schedule,
		&availability.SlotDuration,
		&availability.BufferTime,
		&availability.Location,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	availability.CreatedAt = createdAt.Time
	availability.UpdatedAt = updatedAt.Time

	return &availability, nil
}
