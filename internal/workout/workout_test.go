package workout

import (
	"math"
	"strings"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestReferenceScenarios(t *testing.T) {
	tests := []struct {
		name         string
		tag          string
		data         []any
		wantKind     string
		wantDistance float64
		wantSpeed    float64
		wantCalories float64
	}{
		{
			name:         "running 15000 steps over 1h at 75kg",
			tag:          TagRunning,
			data:         []any{15000.0, 1.0, 75.0},
			wantKind:     KindRunning,
			wantDistance: 9.75,
			wantSpeed:    9.75,
			wantCalories: (18*9.75 - 20) * 75 / 1000 * 60, // 699.75
		},
		{
			name:         "walking 9000 steps over 1h at 75kg 180cm",
			tag:          TagWalking,
			data:         []any{9000.0, 1.0, 75.0, 180.0},
			wantKind:     KindWalking,
			wantDistance: 5.85,
			wantSpeed:    5.85,
			wantCalories: 157.5,
		},
		{
			name:         "swimming 720 strokes over 1h at 80kg in 25m pool 40 laps",
			tag:          TagSwimming,
			data:         []any{720.0, 1.0, 80.0, 25.0, 40.0},
			wantKind:     KindSwimming,
			wantDistance: 0.9936,
			wantSpeed:    1.0,
			wantCalories: 336.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := New(tt.tag, tt.data)
			if err != nil {
				t.Fatalf("New(%q) error: %v", tt.tag, err)
			}
			if got := tr.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", got, tt.wantKind)
			}
			if got := tr.Distance(); !almostEqual(got, tt.wantDistance) {
				t.Errorf("Distance() = %v, want %v", got, tt.wantDistance)
			}
			if got := tr.MeanSpeed(); !almostEqual(got, tt.wantSpeed) {
				t.Errorf("MeanSpeed() = %v, want %v", got, tt.wantSpeed)
			}
			if got := tr.Calories(); !almostEqual(got, tt.wantCalories) {
				t.Errorf("Calories() = %v, want %v", got, tt.wantCalories)
			}
		})
	}
}

func TestDistanceNonNegative(t *testing.T) {
	// Distance must be >= 0 for any non-negative action count.
	actions := []float64{0, 1, 720, 15000}
	for _, action := range actions {
		run, err := NewRunning([]float64{action, 1, 75})
		if err != nil {
			t.Fatalf("NewRunning error: %v", err)
		}
		if run.Distance() < 0 {
			t.Errorf("Running Distance() = %v for action %v, want >= 0", run.Distance(), action)
		}
		swim, err := NewSwimming([]float64{action, 1, 80, 25, 40})
		if err != nil {
			t.Fatalf("NewSwimming error: %v", err)
		}
		if swim.Distance() < 0 {
			t.Errorf("Swimming Distance() = %v for action %v, want >= 0", swim.Distance(), action)
		}
	}
}

func TestRunningCaloriesCanGoNegative(t *testing.T) {
	// At very low speeds the running formula dips below zero. The
	// reference formula is not clamped and ours must not be either.
	run, err := NewRunning([]float64{100, 1, 75})
	if err != nil {
		t.Fatalf("NewRunning error: %v", err)
	}
	if got := run.Calories(); got >= 0 {
		t.Errorf("Calories() = %v for near-zero speed, want negative", got)
	}
}

func TestWalkingFloorDivision(t *testing.T) {
	// Pick inputs where speed²/height crosses 1 so plain division
	// would differ: 30000 steps in 1h -> 19.5 km/h, 19.5²/180 ≈ 2.11,
	// floored to 2.
	walk, err := NewSportsWalking([]float64{30000, 1, 75, 180})
	if err != nil {
		t.Fatalf("NewSportsWalking error: %v", err)
	}
	want := (0.035*75 + 2*0.029*75) * 60
	if got := walk.Calories(); !almostEqual(got, want) {
		t.Errorf("Calories() = %v, want %v (floored term)", got, want)
	}
}

func TestSwimmingSpeedDivergesFromDistance(t *testing.T) {
	// Swimming speed comes from pool laps while distance comes from
	// strokes; the two must not satisfy distance/duration == speed.
	swim, err := NewSwimming([]float64{720, 1, 80, 25, 40})
	if err != nil {
		t.Fatalf("NewSwimming error: %v", err)
	}
	if almostEqual(swim.Distance()/swim.Duration(), swim.MeanSpeed()) {
		t.Errorf("Distance()/Duration() = %v equals MeanSpeed() = %v; formulas must diverge",
			swim.Distance()/swim.Duration(), swim.MeanSpeed())
	}
}

func TestBaseCaloriesPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("base Calories() did not panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "not implemented") {
			t.Errorf("panic = %v, want a not-implemented message", r)
		}
	}()
	b := base{kind: "Base", action: 1, duration: 1, weight: 1, strideLen: stepLength}
	b.Calories()
}

func TestSummarizeIsPure(t *testing.T) {
	run, err := NewRunning([]float64{15000, 1, 75})
	if err != nil {
		t.Fatalf("NewRunning error: %v", err)
	}
	first := Summarize(run)
	second := Summarize(run)
	if first != second {
		t.Errorf("Summarize not stable: %+v vs %+v", first, second)
	}
}

func TestMessageFormat(t *testing.T) {
	tests := []struct {
		name string
		info InfoMessage
		want string
	}{
		{
			name: "trailing zeros kept",
			info: InfoMessage{
				TrainingType: KindSwimming,
				Duration:     1,
				Distance:     0.9936,
				Speed:        1,
				Calories:     336,
			},
			want: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name: "running summary",
			info: InfoMessage{
				TrainingType: KindRunning,
				Duration:     1,
				Distance:     9.75,
				Speed:        9.75,
				Calories:     699.75,
			},
			want: "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
