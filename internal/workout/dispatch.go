package workout

import (
	"errors"
	"fmt"
)

// Workout kind tags as sent by the sensor unit.
const (
	TagRunning  = "RUN"
	TagWalking  = "WLK"
	TagSwimming = "SWM"
)

// ErrInvalidInput is returned by New when the kind tag is unknown or a
// data value is not numeric.
var ErrInvalidInput = errors.New("invalid input")

// ErrBadArity is returned by constructors when the value count does
// not match the kind's field count.
var ErrBadArity = errors.New("wrong number of values")

func arityError(kind string, want, got int) error {
	return fmt.Errorf("%s: want %d values, got %d: %w", kind, want, got, ErrBadArity)
}

// constructors maps sensor tags to workout constructors.
var constructors = map[string]func([]float64) (Training, error){
	TagRunning:  func(v []float64) (Training, error) { return NewRunning(v) },
	TagWalking:  func(v []float64) (Training, error) { return NewSportsWalking(v) },
	TagSwimming: func(v []float64) (Training, error) { return NewSwimming(v) },
}

// New validates a raw sensor packet and constructs the matching
// workout. The kind tag must be one of RUN, WLK or SWM and every data
// value must be numeric; either failure is ErrInvalidInput and nothing
// is constructed. A known tag with the wrong value count fails inside
// the constructor with ErrBadArity instead.
func New(kind string, data []any) (Training, error) {
	build, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("unknown workout type %q: %w", kind, ErrInvalidInput)
	}

	values := make([]float64, len(data))
	for i, v := range data {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("data[%d]: %T is not numeric: %w", i, v, ErrInvalidInput)
		}
		values[i] = f
	}

	t, err := build(values)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// toFloat accepts the numeric types JSON decoding and direct callers
// are likely to hand in.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	default:
		return 0, false
	}
}
