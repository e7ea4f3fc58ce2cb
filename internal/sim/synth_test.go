// v2
// internal/sim/synth_test.go
package sim

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestReadingStaysInRange(t *testing.T) {
	known := make(map[string]bool, len(States))
	for _, s := range States {
		known[s] = true
	}

	s := NewSynthesizer(
		map[string]float64{"24381": 15, "24382": -10},
		map[string]float64{"24381": 1.0, "24382": -1.0},
		rand.New(rand.NewSource(1)),
	)

	for hour := 0; hour < 24; hour++ {
		now := time.Date(2025, time.December, 5, hour, 0, 0, 0, time.Local)
		for i := 0; i < 40; i++ {
			for _, room := range []string{"24381", "24382", "24546"} {
				r := s.Reading(room, now)
				if r.Room != room {
					t.Fatalf("hour %d: room = %q, want %q", hour, r.Room, room)
				}
				if r.Occupancy < 0 || r.Occupancy > 100 {
					t.Fatalf("hour %d: occupancy %v out of [0,100]", hour, r.Occupancy)
				}
				if r.Noise < 30 || r.Noise > 85 {
					t.Fatalf("hour %d: noise %v out of [30,85]", hour, r.Noise)
				}
				if r.Temperature < 17 || r.Temperature > 29 {
					t.Fatalf("hour %d: temperature %v out of [17,29]", hour, r.Temperature)
				}
				if r.Light < 100 || r.Light > 600 {
					t.Fatalf("hour %d: light %v out of [100,600]", hour, r.Light)
				}
				if !known[r.State] {
					t.Fatalf("hour %d: state %q not a known state", hour, r.State)
				}
			}
		}
	}
}

func TestReadingDeterministicForSeed(t *testing.T) {
	occBias := map[string]float64{"24546": 10}
	tempBias := map[string]float64{"24546": 0.3}
	now := time.Date(2025, time.December, 5, 14, 30, 9, 0, time.Local)

	a := NewSynthesizer(occBias, tempBias, rand.New(rand.NewSource(42)))
	b := NewSynthesizer(occBias, tempBias, rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		ra := a.Reading("24546", now)
		rb := b.Reading("24546", now)
		if ra != rb {
			t.Fatalf("draw %d: readings diverged for identical seeds:\n%+v\n%+v", i, ra, rb)
		}
	}
}

func TestReadingRoundsToOneDecimal(t *testing.T) {
	s := NewSynthesizer(nil, nil, rand.New(rand.NewSource(3)))
	now := time.Date(2025, time.December, 5, 11, 0, 0, 0, time.Local)

	for i := 0; i < 100; i++ {
		r := s.Reading("24380", now)
		for name, v := range map[string]float64{
			"occupancy":   r.Occupancy,
			"noise":       r.Noise,
			"temperature": r.Temperature,
			"light":       r.Light,
		} {
			scaled := v * 10
			if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
				t.Fatalf("%s = %v not rounded to one decimal", name, v)
			}
		}
	}
}

func TestReadingUnknownRoomGetsZeroBias(t *testing.T) {
	now := time.Date(2025, time.December, 5, 9, 0, 0, 0, time.Local)

	listed := NewSynthesizer(
		map[string]float64{"24547": 0},
		map[string]float64{"24547": 0},
		rand.New(rand.NewSource(99)),
	)
	unlisted := NewSynthesizer(nil, nil, rand.New(rand.NewSource(99)))

	for i := 0; i < 20; i++ {
		ra := listed.Reading("24547", now)
		rb := unlisted.Reading("24547", now)
		if ra != rb {
			t.Fatalf("draw %d: explicit zero bias and missing bias diverged:\n%+v\n%+v", i, ra, rb)
		}
	}
}

func TestReadingTimestampSecondPrecision(t *testing.T) {
	s := NewSynthesizer(nil, nil, rand.New(rand.NewSource(5)))
	now := time.Date(2025, time.December, 5, 14, 30, 9, 123456789, time.Local)

	r := s.Reading("24546", now)
	if r.Timestamp != "2025-12-05T14:30:09" {
		t.Fatalf("timestamp = %q, want %q", r.Timestamp, "2025-12-05T14:30:09")
	}
	if _, err := time.Parse("2006-01-02T15:04:05", r.Timestamp); err != nil {
		t.Fatalf("timestamp %q does not round-trip: %v", r.Timestamp, err)
	}
}
