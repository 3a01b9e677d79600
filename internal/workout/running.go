package workout

// Running calorie coefficients.
const (
	runSpeedMultiplier = 18
	runSpeedOffset     = 20
)

// Running is a street or treadmill run. Distance and speed come from
// the base step math.
type Running struct {
	base
}

// NewRunning builds a running workout from positional sensor values:
// action (steps), duration (hours), weight (kg).
func NewRunning(values []float64) (Running, error) {
	if len(values) != 3 {
		return Running{}, arityError(KindRunning, 3, len(values))
	}
	return Running{base{
		kind:      KindRunning,
		action:    values[0],
		duration:  values[1],
		weight:    values[2],
		strideLen: stepLength,
	}}, nil
}

// Calories implements the running formula. It goes negative for very
// low speeds; the reference formula is not clamped.
func (r Running) Calories() float64 {
	return (runSpeedMultiplier*r.MeanSpeed() - runSpeedOffset) *
		r.weight / mInKm * (r.duration * minutesPerHour)
}
