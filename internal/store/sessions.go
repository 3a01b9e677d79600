package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const sessionColumns = `id, kind, action, duration_hours, weight_kg,
	height_cm, pool_length_m, lap_count,
	distance_km, mean_speed_kmh, calories_kcal, message, created_at`

// SaveSession inserts a session. A missing ID gets a fresh UUID and a
// zero CreatedAt is set to now; both are written back to the struct.
func (s *Store) SaveSession(sess *Session) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.Kind, sess.Action, sess.DurationHours, sess.WeightKg,
		sess.HeightCm, sess.PoolLengthM, sess.LapCount,
		sess.DistanceKm, sess.MeanSpeedKmH, sess.CaloriesKcal, sess.Message,
		sess.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID.
func (s *Store) GetSession(id string) (*Session, error) {
	row := s.db.QueryRow(`
		SELECT `+sessionColumns+`
		FROM sessions WHERE id = ?`, id)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// ListSessions returns sessions ordered newest first.
func (s *Store) ListSessions(limit, offset int) ([]Session, error) {
	rows, err := s.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	return sessions, rows.Err()
}

// CountSessions returns the total number of stored sessions.
func (s *Store) CountSessions() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count)
	return count, err
}

// TotalsByKind aggregates session count, distance and calories per
// workout kind, ordered by kind.
func (s *Store) TotalsByKind() ([]KindTotals, error) {
	rows, err := s.db.Query(`
		SELECT kind, COUNT(*), SUM(distance_km), SUM(calories_kcal)
		FROM sessions
		GROUP BY kind
		ORDER BY kind`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []KindTotals
	for rows.Next() {
		var t KindTotals
		if err := rows.Scan(&t.Kind, &t.Sessions, &t.DistanceKm, &t.CaloriesKcal); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// DeleteSession removes a session by ID.
func (s *Store) DeleteSession(id string) error {
	result, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var sess Session
	var createdAt string

	err := row.Scan(
		&sess.ID, &sess.Kind, &sess.Action, &sess.DurationHours, &sess.WeightKg,
		&sess.HeightCm, &sess.PoolLengthM, &sess.LapCount,
		&sess.DistanceKm, &sess.MeanSpeedKmH, &sess.CaloriesKcal, &sess.Message,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	sess.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	return &sess, nil
}
