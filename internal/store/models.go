package store

import "time"

// Session is one processed workout: the raw sensor inputs plus the
// derived summary values and the rendered message.
type Session struct {
	ID            string    `db:"id"`
	Kind          string    `db:"kind"`
	Action        float64   `db:"action"`
	DurationHours float64   `db:"duration_hours"`
	WeightKg      float64   `db:"weight_kg"`
	HeightCm      *float64  `db:"height_cm"`     // walking only
	PoolLengthM   *float64  `db:"pool_length_m"` // swimming only
	LapCount      *float64  `db:"lap_count"`     // swimming only
	DistanceKm    float64   `db:"distance_km"`
	MeanSpeedKmH  float64   `db:"mean_speed_kmh"`
	CaloriesKcal  float64   `db:"calories_kcal"`
	Message       string    `db:"message"`
	CreatedAt     time.Time `db:"created_at"`
}

// KindTotals aggregates sessions of one workout kind.
type KindTotals struct {
	Kind         string
	Sessions     int
	DistanceKm   float64
	CaloriesKcal float64
}
