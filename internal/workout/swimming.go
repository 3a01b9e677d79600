package workout

// Swimming calorie coefficients.
const (
	swimSpeedOffset      = 1.1
	swimWeightMultiplier = 2
)

// Swimming reports distance from the stroke count but speed from pool
// length and lap count. The two figures come from different inputs and
// deliberately disagree; both appear in the summary.
type Swimming struct {
	base
	poolLength float64 // m
	lapCount   float64
}

// NewSwimming builds a swimming workout from positional sensor values:
// action (strokes), duration (hours), weight (kg), pool length (m),
// lap count.
func NewSwimming(values []float64) (Swimming, error) {
	if len(values) != 5 {
		return Swimming{}, arityError(KindSwimming, 5, len(values))
	}
	return Swimming{
		base: base{
			kind:      KindSwimming,
			action:    values[0],
			duration:  values[1],
			weight:    values[2],
			strideLen: strokeLength,
		},
		poolLength: values[3],
		lapCount:   values[4],
	}, nil
}

// PoolLength returns the pool length in meters.
func (s Swimming) PoolLength() float64 { return s.poolLength }

// LapCount returns the number of laps swum.
func (s Swimming) LapCount() float64 { return s.lapCount }

// MeanSpeed derives speed from pool laps, not from Distance.
func (s Swimming) MeanSpeed() float64 {
	return s.poolLength * s.lapCount / mInKm / s.duration
}

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimSpeedOffset) * swimWeightMultiplier * s.weight
}
