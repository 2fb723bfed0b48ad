package journal

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/NLS-ScheduleService/internal/domain"
	"github.com/m04kA/NLS-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий журнала переходов статусов.
// Запись в журнал идёт ПОСЛЕ подтверждения перехода бэкендом; ошибка
// журнала логируется вызывающей стороной и никогда не откатывает
// уже применённый переход.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Record фиксирует применённый переход статуса
func (r *Repository) Record(ctx context.Context, rec *domain.TransitionRecord) (*domain.TransitionRecord, error) {
	query, args, err := psqlbuilder.Insert("status_transitions").
		Columns(
			"appointment_id",
			"from_status",
			"to_status",
			"trigger_kind",
			"occurred_at",
		).
		Values(
			rec.AppointmentID,
			rec.FromStatus,
			rec.ToStatus,
			rec.Trigger,
			rec.OccurredAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}

	rec.CreatedAt = createdAt.Time
	return rec, nil
}

// ListByAppointment возвращает историю переходов записи в порядке применения
func (r *Repository) ListByAppointment(ctx context.Context, appointmentID int64) ([]*domain.TransitionRecord, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"appointment_id",
		"from_status",
		"to_status",
		"trigger_kind",
		"occurred_at",
		"created_at",
	).
		From("status_transitions").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		OrderBy("occurred_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.TransitionRecord, 0)
	for rows.Next() {
		var rec domain.TransitionRecord
		var createdAt sql.NullTime

		err := rows.Scan(
			&rec.ID,
			&rec.AppointmentID,
			&rec.FromStatus,
			&rec.ToStatus,
			&rec.Trigger,
			&rec.OccurredAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByAppointment - scan row: %v", ErrScanRow, err)
		}

		rec.CreatedAt = createdAt.Time
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByAppointment - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
