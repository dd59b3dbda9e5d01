package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/attendance_guard/internal/models"
	"github.com/shenikar/attendance_guard/internal/service"
)

const breakColumns = `id, employee_id, time_entry_id, kind, status, started_at, ended_at, duration_minutes, forced`

// BreakRepository хранит сессии перерывов в PostgreSQL
type BreakRepository struct {
	db *pgxpool.Pool
}

// NewBreakRepository создает новый BreakRepository
func NewBreakRepository(db *pgxpool.Pool) service.BreakRepository {
	return &BreakRepository{db: db}
}

// SaveBreak сохраняет перерыв (upsert). Второй активный перерыв той же записи
// нарушает частичный уникальный индекс и возвращается как ErrDuplicateActiveBreak.
func (r *BreakRepository) SaveBreak(ctx context.Context, session *models.BreakSession) error {
	query := `
		INSERT INTO break_sessions (` + breakColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			ended_at = EXCLUDED.ended_at,
			duration_minutes = EXCLUDED.duration_minutes,
			forced = EXCLUDED.forced;
	`
	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.EmployeeID,
		session.TimeEntryID,
		string(session.Kind),
		string(session.Status),
		session.StartedAt,
		session.EndedAt,
		session.DurationMinutes,
		session.Forced,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("time entry %s: %w", session.TimeEntryID, models.ErrDuplicateActiveBreak)
		}
		return fmt.Errorf("failed to save break session: %w", err)
	}
	return nil
}

// ListBreaks возвращает все перерывы записи рабочего времени в порядке начала
func (r *BreakRepository) ListBreaks(ctx context.Context, timeEntryID string) ([]models.BreakSession, error) {
	query := `
		SELECT ` + breakColumns + `
		FROM break_sessions
		WHERE time_entry_id = $1
		ORDER BY started_at, id;
	`
	rows, err := r.db.Query(ctx, query, timeEntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}
	return scanBreakSessions(rows)
}

// ListActiveBreaks возвращает незавершенные перерывы, по ним при старте восстанавливаются watchdog
func (r *BreakRepository) ListActiveBreaks(ctx context.Context) ([]models.BreakSession, error) {
	query := `
		SELECT ` + breakColumns + `
		FROM break_sessions
		WHERE status = 'active'
		ORDER BY started_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active breaks: %w", err)
	}
	return scanBreakSessions(rows)
}

func scanBreakSessions(rows pgx.Rows) ([]models.BreakSession, error) {
	defer rows.Close()

	sessions := make([]models.BreakSession, 0)
	for rows.Next() {
		var s models.BreakSession
		err := rows.Scan(
			&s.ID,
			&s.EmployeeID,
			&s.TimeEntryID,
			&s.Kind,
			&s.Status,
			&s.StartedAt,
			&s.EndedAt,
			&s.DurationMinutes,
			&s.Forced,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan break session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error break session iteration: %w", err)
	}
	return sessions, nil
}
