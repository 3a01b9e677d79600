// Package workout implements the training record hierarchy: a shared
// base for distance and speed math plus three concrete workout kinds,
// each with its own calorie formula.
package workout

import "fmt"

const (
	mInKm          = 1000.0
	minutesPerHour = 60.0

	// km covered per unit of action
	stepLength   = 0.65 // running and walking
	strokeLength = 1.38 // swimming
)

// Kind labels used in summary output. These are stable: renaming the
// concrete types must not change them.
const (
	KindRunning  = "Running"
	KindWalking  = "SportsWalking"
	KindSwimming = "Swimming"
)

// Training is the capability set shared by all workout kinds. A value
// is immutable after construction, so every method is a pure function
// of its state and can be called repeatedly with identical results.
type Training interface {
	// Kind returns the stable label used in summary output.
	Kind() string
	// Duration returns the workout duration in hours.
	Duration() float64
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() float64
	// Calories returns the energy spent in kcal.
	Calories() float64
}

// base carries the raw sensor fields common to every workout kind and
// the default distance and speed math.
type base struct {
	kind     string
	action   float64 // step or stroke count
	duration float64 // hours
	weight   float64 // kg

	strideLen float64 // km per unit of action
}

func (b base) Kind() string      { return b.kind }
func (b base) Duration() float64 { return b.duration }
func (b base) Action() float64   { return b.action }
func (b base) Weight() float64   { return b.weight }

// Distance converts the raw action count to km.
func (b base) Distance() float64 {
	return b.action * b.strideLen / mInKm
}

// MeanSpeed is distance over duration in km/h.
func (b base) MeanSpeed() float64 {
	return b.Distance() / b.duration
}

// Calories on the bare base is a wiring defect: every concrete kind
// shadows it with its own formula, and the dispatcher never builds a
// bare base. Reaching this is a bug in the caller, not bad input.
func (b base) Calories() float64 {
	panic(fmt.Sprintf("workout: calories not implemented for %s", b.kind))
}

// InfoMessage is the rendered result of a single workout.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message renders the canonical summary line. All four numeric fields
// are printed with exactly three decimal places.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// Summarize assembles the summary report for a training.
func Summarize(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Kind(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.Calories(),
	}
}
