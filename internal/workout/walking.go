package workout

import "math"

// SportsWalking calorie coefficients.
const (
	walkWeightMultiplier = 0.035
	walkSpeedMultiplier  = 0.029
)

// SportsWalking is race walking; the athlete's height feeds the
// calorie formula.
type SportsWalking struct {
	base
	height float64 // cm
}

// NewSportsWalking builds a walking workout from positional sensor
// values: action (steps), duration (hours), weight (kg), height (cm).
func NewSportsWalking(values []float64) (SportsWalking, error) {
	if len(values) != 4 {
		return SportsWalking{}, arityError(KindWalking, 4, len(values))
	}
	return SportsWalking{
		base: base{
			kind:      KindWalking,
			action:    values[0],
			duration:  values[1],
			weight:    values[2],
			strideLen: stepLength,
		},
		height: values[3],
	}, nil
}

// Height returns the athlete's height in cm.
func (w SportsWalking) Height() float64 { return w.height }

// Calories implements the walking formula. The squared speed over
// height term is floor-divided; real division here changes the
// reference output.
func (w SportsWalking) Calories() float64 {
	return (walkWeightMultiplier*w.weight +
		math.Floor(math.Pow(w.MeanSpeed(), 2)/w.height)*walkSpeedMultiplier*w.weight) *
		(w.duration * minutesPerHour)
}
