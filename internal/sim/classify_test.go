// v2
// internal/sim/classify_test.go
package sim

import (
	"math/rand"
	"testing"
)

func TestClassifyOrderedRules(t *testing.T) {
	tests := []struct {
		name                         string
		occ, noise, temperature, lux float64
		want                         string
	}{
		{"overloaded at both thresholds", 90, 60, 22, 400, StateOverloaded},
		{"overloaded beats warm", 95, 70, 28.5, 400, StateOverloaded},
		{"warm above threshold", 50, 50, 27.6, 400, StateWarm},
		{"warm boundary is exclusive", 20, 30, 27.5, 400, StateNeutral},
		{"cold below threshold", 20, 30, 18.4, 400, StateCold},
		{"cold boundary is exclusive", 20, 30, 18.5, 400, StateNeutral},
		{"dim below threshold", 20, 30, 22, 239.9, StateDim},
		{"dim boundary falls through to good", 20, 30, 22, 240, StateGood},
		{"noisy mid occupancy", 50, 60, 22, 400, StateNoisy},
		{"busy lower bound", 70, 59, 22, 400, StateBusy},
		{"busy at full occupancy quiet floor", 90, 59, 22, 400, StateBusy},
		{"perfect conditions", 20, 30, 22, 400, StatePerfect},
		{"perfect at light boundary", 20, 30, 22, 360, StatePerfect},
		{"good misses perfect occupancy", 40, 42, 25, 300, StateGood},
		{"calm misses good occupancy", 55, 42, 22, 400, StateCalm},
		{"nothing matches", 65, 50, 22, 300, StateNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.occ, tt.noise, tt.temperature, tt.lux)
			if got != tt.want {
				t.Fatalf("Classify(%v, %v, %v, %v) = %q, want %q",
					tt.occ, tt.noise, tt.temperature, tt.lux, got, tt.want)
			}
		})
	}
}

func TestClassifyAlwaysYieldsOneState(t *testing.T) {
	known := make(map[string]bool, len(States))
	for _, s := range States {
		known[s] = true
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		occ := rng.Float64() * 100
		noise := 30 + rng.Float64()*55
		temperature := 17 + rng.Float64()*12
		lux := 100 + rng.Float64()*500
		got := Classify(occ, noise, temperature, lux)
		if !known[got] {
			t.Fatalf("Classify(%v, %v, %v, %v) = %q, not a known state",
				occ, noise, temperature, lux, got)
		}
	}
}
