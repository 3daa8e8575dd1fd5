package connection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий связей пациент-врач.
// Связями управляет отдельный сервис, здесь только чтение и заполнение для seed.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindAccepted возвращает принятую связь пациента с врачом
func (r *Repository) FindAccepted(ctx context.Context, patientID, doctorID int64) (*domain.Connection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "patient_id", "doctor_id", "status", "created_at", "updated_at").
		From("connections").
		Where(squirrel.Eq{
			"patient_id": patientID,
			"doctor_id":  doctorID,
			"status":     domain.ConnectionAccepted,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindAccepted - build select query: %v", ErrBuildQuery, err)
	}

	var (
		conn                 domain.Connection
		createdAt, updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&conn.ID,
		&conn.PatientID,
		&conn.DoctorID,
		&conn.Status,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConnectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindAccepted - scan connection: %v", ErrScanRow, err)
	}

	conn.CreatedAt = createdAt.Time
	conn.UpdatedAt = updatedAt.Time

	return &conn, nil
}

// Upsert создает связь или обновляет её статус (используется командой seed)
func (r *Repository) Upsert(ctx context.Context, conn *domain.Connection) (*domain.Connection, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("connections").
		Columns("patient_id", "doctor_id", "status").
		Values(conn.PatientID, conn.DoctorID, conn.Status).
		Suffix("ON CONFLICT (patient_id, doctor_id) DO UPDATE SET status = EXCLUDED.status, updated_at = NOW() RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&conn.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	conn.CreatedAt = createdAt.Time
	conn.UpdatedAt = updatedAt.Time

	return conn, nil
}
