// v2
// internal/sim/synth.go
package sim

import (
	"math"
	"math/rand"
	"time"
)

// timestampLayout is naive local ISO-8601 at second precision.
const timestampLayout = "2006-01-02T15:04:05"

// Reading is one synthesized environment snapshot for a room, shaped as the
// published status payload.
type Reading struct {
	Timestamp   string  `json:"timestamp"`
	Room        string  `json:"room"`
	Occupancy   float64 `json:"occupancy"`
	Noise       float64 `json:"noise"`
	Temperature float64 `json:"temperature"`
	Light       float64 `json:"light"`
	State       string  `json:"state"`
}

// Generation parameters. Occupancy and temperature follow the hour of day and
// a per-room bias; the low-probability branches inject crowd surges, noise
// disturbances, HVAC excursions and blinds/artificial-light changes.
const (
	occupancySigma  = 18.0
	occupancySurgeP = 0.10

	noiseBase   = 28.0
	noisePerOcc = 0.45
	noiseSigma  = 5.0
	noiseSpikeP = 0.15

	temperatureBase   = 22.5
	afternoonTempBump = 0.7
	temperatureSigma  = 1.0
	tempExcursionP    = 0.05

	lightBase        = 380.0
	lightSigma       = 35.0
	lightDimP        = 0.07
	lightDimMean     = 180.0
	lightDimSigma    = 40.0
	lightBrightP     = 0.05
	lightBrightMean  = 480.0
	lightBrightSigma = 40.0
)

// Synthesizer produces biased-random readings. Bias maps are keyed by room id
// and default to 0 for unlisted rooms. The random source is injected so tests
// can seed it; calls are otherwise independent of each other.
type Synthesizer struct {
	occupancyBias   map[string]float64
	temperatureBias map[string]float64
	rng             *rand.Rand
}

// NewSynthesizer returns a synthesizer over the given bias tables. A nil rng
// falls back to a time-seeded source.
func NewSynthesizer(occupancyBias, temperatureBias map[string]float64, rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{occupancyBias: occupancyBias, temperatureBias: temperatureBias, rng: rng}
}

// baseOccupancy is the expected crowd level for the hour of day.
func baseOccupancy(hour int) float64 {
	switch {
	case hour >= 7 && hour <= 10:
		return 35
	case hour >= 11 && hour <= 16:
		return 70
	case hour >= 17 && hour <= 21:
		return 55
	default:
		return 20
	}
}

// Reading synthesizes one classified reading for room at the given instant.
// Classification runs on the clamped raw metrics; the published values are
// rounded to one decimal afterwards.
func (s *Synthesizer) Reading(room string, now time.Time) Reading {
	hour := now.Hour()

	occ := s.rng.NormFloat64()*occupancySigma + baseOccupancy(hour) + s.occupancyBias[room]
	if s.rng.Float64() < occupancySurgeP {
		occ += float64(s.rng.Intn(21) + 20)
	}
	occ = clamp(occ, 0, 100)

	noise := noiseBase + occ*noisePerOcc + s.rng.NormFloat64()*noiseSigma
	if s.rng.Float64() < noiseSpikeP {
		noise += float64(s.rng.Intn(16) + 10)
	}
	noise = clamp(noise, 30, 85)

	base := temperatureBase
	if hour >= 12 && hour <= 17 {
		base += afternoonTempBump
	}
	temp := s.rng.NormFloat64()*temperatureSigma + base + s.temperatureBias[room]
	if s.rng.Float64() < tempExcursionP {
		temp += 2 + s.rng.Float64()*2
	}
	if s.rng.Float64() < tempExcursionP {
		temp -= 2 + s.rng.Float64()*2
	}
	temp = clamp(temp, 17, 29)

	light := s.rng.NormFloat64()*lightSigma + lightBase
	if s.rng.Float64() < lightDimP {
		light = s.rng.NormFloat64()*lightDimSigma + lightDimMean
	}
	// Checked independently of the dim branch; when both fire, bright wins.
	if s.rng.Float64() < lightBrightP {
		light = s.rng.NormFloat64()*lightBrightSigma + lightBrightMean
	}
	light = clamp(light, 100, 600)

	return Reading{
		Timestamp:   now.Format(timestampLayout),
		Room:        room,
		Occupancy:   round1(occ),
		Noise:       round1(noise),
		Temperature: round1(temp),
		Light:       round1(light),
		State:       Classify(occ, noise, temp, light),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
