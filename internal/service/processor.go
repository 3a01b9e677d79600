// Package service coordinates packet processing: dispatching sensor
// packets into workouts, summarizing them and persisting the results.
package service

import (
	"fmt"
	"strings"

	"fittrack/internal/sensor"
	"fittrack/internal/store"
	"fittrack/internal/workout"
)

// Processor runs sensor packets through the workout hierarchy and
// stores the resulting sessions.
type Processor struct {
	db *store.Store
}

// NewProcessor creates a Processor. A nil store disables persistence;
// packets are still dispatched and summarized.
func NewProcessor(db *store.Store) *Processor {
	return &Processor{db: db}
}

// Result is the outcome of processing one packet. Err is set for
// packets the dispatcher rejected (invalid input, wrong arity); such
// results carry no session or summary.
type Result struct {
	Packet  sensor.Packet
	Session *store.Session
	Info    workout.InfoMessage
	Err     error
}

// Process dispatches, summarizes and persists each packet in order.
// Per-packet dispatch failures are recorded in the result and do not
// stop the batch; a storage failure does.
func (p *Processor) Process(packets []sensor.Packet) ([]Result, error) {
	results := make([]Result, 0, len(packets))
	for _, pkt := range packets {
		t, err := workout.New(pkt.WorkoutType, pkt.Data)
		if err != nil {
			results = append(results, Result{Packet: pkt, Err: err})
			continue
		}

		info := workout.Summarize(t)
		sess := sessionFromTraining(t, info)
		if p.db != nil {
			if err := p.db.SaveSession(sess); err != nil {
				return results, fmt.Errorf("saving session: %w", err)
			}
		}

		results = append(results, Result{Packet: pkt, Session: sess, Info: info})
	}
	return results, nil
}

// RecentSessions returns up to limit stored sessions, newest first.
func (p *Processor) RecentSessions(limit int) ([]store.Session, error) {
	return p.db.ListSessions(limit, 0)
}

// Totals aggregates stored sessions per workout kind.
func (p *Processor) Totals() ([]store.KindTotals, error) {
	return p.db.TotalsByKind()
}

// Report renders one line per result: the summary message for
// processed packets, a skip note for rejected ones.
func Report(results []Result) string {
	var b strings.Builder
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&b, "skipped %q packet: %v\n", r.Packet.WorkoutType, r.Err)
			continue
		}
		b.WriteString(r.Info.Message())
		b.WriteByte('\n')
	}
	return b.String()
}

// sessionFromTraining flattens a workout and its summary into a
// storable session row.
func sessionFromTraining(t workout.Training, info workout.InfoMessage) *store.Session {
	sess := &store.Session{
		Kind:          info.TrainingType,
		DurationHours: info.Duration,
		DistanceKm:    info.Distance,
		MeanSpeedKmH:  info.Speed,
		CaloriesKcal:  info.Calories,
		Message:       info.Message(),
	}

	switch w := t.(type) {
	case workout.Running:
		sess.Action = w.Action()
		sess.WeightKg = w.Weight()
	case workout.SportsWalking:
		sess.Action = w.Action()
		sess.WeightKg = w.Weight()
		h := w.Height()
		sess.HeightCm = &h
	case workout.Swimming:
		sess.Action = w.Action()
		sess.WeightKg = w.Weight()
		pl := w.PoolLength()
		lc := w.LapCount()
		sess.PoolLengthM = &pl
		sess.LapCount = &lc
	}

	return sess
}
