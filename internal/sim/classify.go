// v1
// internal/sim/classify.go
package sim

// Room states, in classification precedence order.
const (
	StateOverloaded = "overloaded"
	StateWarm       = "warm"
	StateCold       = "cold"
	StateDim        = "dim"
	StateNoisy      = "noisy"
	StateBusy       = "busy"
	StatePerfect    = "perfect"
	StateGood       = "good"
	StateCalm       = "calm"
	StateNeutral    = "neutral"
)

// States lists every label Classify can return.
var States = []string{
	StateOverloaded,
	StateWarm,
	StateCold,
	StateDim,
	StateNoisy,
	StateBusy,
	StatePerfect,
	StateGood,
	StateCalm,
	StateNeutral,
}

// Classify maps one set of metrics to a single state. The rules form an
// ordered decision list: the first match wins, and later rules assume the
// earlier ones did not fire, so every comparison operator is load-bearing.
func Classify(occupancy, noise, temperature, light float64) string {
	switch {
	case occupancy >= 90 && noise >= 60:
		return StateOverloaded
	case temperature > 27.5:
		return StateWarm
	case temperature < 18.5:
		return StateCold
	case light < 240:
		return StateDim
	case noise >= 60 && occupancy < 90:
		return StateNoisy
	case occupancy >= 70 && occupancy <= 90 && noise < 60:
		return StateBusy
	case occupancy < 30 && noise < 40 && temperature >= 21 && temperature <= 24 && light >= 360:
		return StatePerfect
	case occupancy < 50 && noise < 45 && temperature >= 20 && temperature <= 26:
		return StateGood
	case noise < 44 && occupancy < 60 && temperature >= 19 && temperature <= 26:
		return StateCalm
	default:
		return StateNeutral
	}
}
