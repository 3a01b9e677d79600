package store

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenPath error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func ptr(v float64) *float64 { return &v }

func runningSession() *Session {
	return &Session{
		Kind:          "Running",
		Action:        15000,
		DurationHours: 1,
		WeightKg:      75,
		DistanceKm:    9.75,
		MeanSpeedKmH:  9.75,
		CaloriesKcal:  699.75,
		Message:       "Тип тренировки: Running; ...",
	}
}

func TestSaveAndGetSession(t *testing.T) {
	s := openTestStore(t)

	sess := runningSession()
	if err := s.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession error: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("SaveSession did not assign an ID")
	}
	if sess.CreatedAt.IsZero() {
		t.Fatal("SaveSession did not set CreatedAt")
	}

	got, err := s.GetSession(sess.ID)
	if err != nil {
		t.Fatalf("GetSession error: %v", err)
	}
	if got.Kind != sess.Kind {
		t.Errorf("Kind = %q, want %q", got.Kind, sess.Kind)
	}
	if got.DistanceKm != sess.DistanceKm {
		t.Errorf("DistanceKm = %v, want %v", got.DistanceKm, sess.DistanceKm)
	}
	if got.Message != sess.Message {
		t.Errorf("Message = %q, want %q", got.Message, sess.Message)
	}
	if got.HeightCm != nil {
		t.Errorf("HeightCm = %v, want nil for running", *got.HeightCm)
	}
}

func TestSaveSessionOptionalFields(t *testing.T) {
	s := openTestStore(t)

	sess := &Session{
		Kind:          "Swimming",
		Action:        720,
		DurationHours: 1,
		WeightKg:      80,
		PoolLengthM:   ptr(25),
		LapCount:      ptr(40),
		DistanceKm:    0.9936,
		MeanSpeedKmH:  1.0,
		CaloriesKcal:  336,
		Message:       "Тип тренировки: Swimming; ...",
	}
	if err := s.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession error: %v", err)
	}

	got, err := s.GetSession(sess.ID)
	if err != nil {
		t.Fatalf("GetSession error: %v", err)
	}
	if got.PoolLengthM == nil || *got.PoolLengthM != 25 {
		t.Errorf("PoolLengthM = %v, want 25", got.PoolLengthM)
	}
	if got.LapCount == nil || *got.LapCount != 40 {
		t.Errorf("LapCount = %v, want 40", got.LapCount)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.GetSession("no-such-id"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetSession error = %v, want ErrSessionNotFound", err)
	}
}

func TestListSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		sess := runningSession()
		sess.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := s.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession error: %v", err)
		}
	}

	sessions, err := s.ListSessions(10, 0)
	if err != nil {
		t.Fatalf("ListSessions error: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("ListSessions returned %d, want 3", len(sessions))
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i].CreatedAt.After(sessions[i-1].CreatedAt) {
			t.Errorf("sessions out of order: %v before %v", sessions[i-1].CreatedAt, sessions[i].CreatedAt)
		}
	}

	// limit/offset
	page, err := s.ListSessions(2, 2)
	if err != nil {
		t.Fatalf("ListSessions error: %v", err)
	}
	if len(page) != 1 {
		t.Errorf("ListSessions(2, 2) returned %d, want 1", len(page))
	}
}

func TestCountSessions(t *testing.T) {
	s := openTestStore(t)

	count, err := s.CountSessions()
	if err != nil {
		t.Fatalf("CountSessions error: %v", err)
	}
	if count != 0 {
		t.Errorf("CountSessions = %d on empty store, want 0", count)
	}

	if err := s.SaveSession(runningSession()); err != nil {
		t.Fatalf("SaveSession error: %v", err)
	}

	count, err = s.CountSessions()
	if err != nil {
		t.Fatalf("CountSessions error: %v", err)
	}
	if count != 1 {
		t.Errorf("CountSessions = %d, want 1", count)
	}
}

func TestTotalsByKind(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 2; i++ {
		if err := s.SaveSession(runningSession()); err != nil {
			t.Fatalf("SaveSession error: %v", err)
		}
	}
	swim := &Session{
		Kind:          "Swimming",
		Action:        720,
		DurationHours: 1,
		WeightKg:      80,
		DistanceKm:    0.9936,
		MeanSpeedKmH:  1,
		CaloriesKcal:  336,
		Message:       "m",
	}
	if err := s.SaveSession(swim); err != nil {
		t.Fatalf("SaveSession error: %v", err)
	}

	totals, err := s.TotalsByKind()
	if err != nil {
		t.Fatalf("TotalsByKind error: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("TotalsByKind returned %d kinds, want 2", len(totals))
	}

	// Ordered by kind: Running before Swimming
	if totals[0].Kind != "Running" || totals[0].Sessions != 2 {
		t.Errorf("totals[0] = %+v, want 2 Running sessions", totals[0])
	}
	if math.Abs(totals[0].DistanceKm-19.5) > 1e-9 {
		t.Errorf("Running DistanceKm = %v, want 19.5", totals[0].DistanceKm)
	}
	if totals[1].Kind != "Swimming" || totals[1].Sessions != 1 {
		t.Errorf("totals[1] = %+v, want 1 Swimming session", totals[1])
	}
}

func TestDeleteSession(t *testing.T) {
	s := openTestStore(t)

	sess := runningSession()
	if err := s.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession error: %v", err)
	}

	if err := s.DeleteSession(sess.ID); err != nil {
		t.Fatalf("DeleteSession error: %v", err)
	}
	if _, err := s.GetSession(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetSession after delete = %v, want ErrSessionNotFound", err)
	}
	if err := s.DeleteSession(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("DeleteSession twice = %v, want ErrSessionNotFound", err)
	}
}
