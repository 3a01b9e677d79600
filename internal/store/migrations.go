package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Processed workout sessions: raw sensor inputs plus the
		// derived summary. height_cm, pool_length_m and lap_count are
		// NULL for kinds that don't carry them.
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			action REAL NOT NULL,
			duration_hours REAL NOT NULL,
			weight_kg REAL NOT NULL,
			height_cm REAL,
			pool_length_m REAL,
			lap_count REAL,
			distance_km REAL NOT NULL,
			mean_speed_kmh REAL NOT NULL,
			calories_kcal REAL NOT NULL,
			message TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_sessions_kind ON sessions(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
