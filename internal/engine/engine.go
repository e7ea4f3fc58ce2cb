// v4
// internal/engine/engine.go
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iiishop/CASA0019/internal/config"
	"github.com/iiishop/CASA0019/internal/observability"
	"github.com/iiishop/CASA0019/internal/sim"
	"github.com/iiishop/CASA0019/internal/timeline"
)

// Fetcher pulls one day of reservations grouped by room id.
type Fetcher interface {
	FetchDay(ctx context.Context, date string) (map[string][]timeline.Interval, error)
}

// Publisher delivers a payload to a named topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// Stats are the running counters exposed on the status endpoint.
type Stats struct {
	Cycles        int64  `json:"cycles"`
	FetchFailures int64  `json:"fetch_failures"`
	Published     int64  `json:"published"`
	PublishErrors int64  `json:"publish_errors"`
	LastCycle     string `json:"last_cycle"`
}

type timelineMessage struct {
	Room     string   `json:"room"`
	Timeline []string `json:"timeline"`
}

// Engine drives the update loop: fetch the day's bookings, rebuild each
// room's slot timeline, synthesize a sensor reading, publish both.
type Engine struct {
	cfg         *config.AppConfig
	log         *slog.Logger
	fetch       Fetcher
	pub         Publisher
	synth       *sim.Synthesizer
	met         *observability.Metrics
	windowStart time.Time
	windowEnd   time.Time
	slotWidth   time.Duration

	mu    sync.RWMutex
	stats Stats
}

func New(cfg *config.AppConfig, log *slog.Logger, fetch Fetcher, pub Publisher, synth *sim.Synthesizer, met *observability.Metrics) (*Engine, error) {
	windowStart, err := clockOn(cfg.Date, cfg.WindowStart)
	if err != nil {
		return nil, fmt.Errorf("window.start: %w", err)
	}
	windowEnd, err := clockOn(cfg.Date, cfg.WindowEnd)
	if err != nil {
		return nil, fmt.Errorf("window.end: %w", err)
	}
	return &Engine{
		cfg:         cfg,
		log:         log,
		fetch:       fetch,
		pub:         pub,
		synth:       synth,
		met:         met,
		windowStart: windowStart,
		windowEnd:   windowEnd,
		slotWidth:   time.Duration(cfg.SlotMinutes) * time.Minute,
	}, nil
}

// clockOn anchors an HH:MM clock reading on the configured date in local time.
func clockOn(date, clock string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
}

// Run executes one cycle immediately, then one per update interval until the
// context is cancelled.
func (e *Engine) Run(ctx context.Context) {
	e.runCycle(ctx)
	ticker := time.NewTicker(e.cfg.UpdateInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			e.log.Info("engine stopped")
			return
		case <-ticker.C:
			e.runCycle(ctx)
		}
	}
}

// runCycle never aborts on a fetch failure: rooms fall back to an all-free
// timeline so the displays keep updating while the booking API is down.
func (e *Engine) runCycle(ctx context.Context) {
	start := time.Now()
	var fetchFailed bool
	grouped, err := e.fetch.FetchDay(ctx, e.cfg.Date)
	if err != nil {
		fetchFailed = true
		e.met.FetchFailed()
		e.log.Error("booking fetch failed; publishing all rooms as free", "error", err)
		grouped = nil
	}

	var published, publishErrors int64
	for _, room := range e.cfg.Rooms {
		labels := timeline.Build(grouped[room], e.windowStart, e.windowEnd, e.slotWidth)
		if err := e.publishJSON(ctx, room, "timeline", timelineMessage{Room: room, Timeline: labels}); err != nil {
			publishErrors++
			e.met.PublishResult("timeline", false)
			e.log.Error("timeline publish failed", "room", room, "error", err)
		} else {
			published++
			e.met.PublishResult("timeline", true)
		}

		reading := e.synth.Reading(room, time.Now())
		if err := e.publishJSON(ctx, room, "status", reading); err != nil {
			publishErrors++
			e.met.PublishResult("status", false)
			e.log.Error("status publish failed", "room", room, "error", err)
		} else {
			published++
			e.met.PublishResult("status", true)
		}
		e.met.ObserveReading(room, reading.Occupancy, reading.Noise, reading.Temperature, reading.Light)
		e.log.Debug("room updated", "room", room, "state", reading.State, "booked_slots", countBooked(labels))
	}

	e.mu.Lock()
	e.stats.Cycles++
	if fetchFailed {
		e.stats.FetchFailures++
	}
	e.stats.Published += published
	e.stats.PublishErrors += publishErrors
	e.stats.LastCycle = time.Now().Format(time.RFC3339)
	e.mu.Unlock()

	e.met.CycleCompleted(time.Since(start))
	e.log.Info("cycle complete", "rooms", len(e.cfg.Rooms), "published", published, "errors", publishErrors, "took", time.Since(start))
}

func (e *Engine) publishJSON(ctx context.Context, room, kind string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	topic := fmt.Sprintf("%s/%s/%s", e.cfg.TopicBase, room, kind)
	return e.pub.Publish(ctx, topic, payload)
}

// Snapshot returns a copy of the running counters.
func (e *Engine) Snapshot() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stats
}

func countBooked(labels []string) int {
	n := 0
	for _, l := range labels {
		if l == timeline.SlotBooked {
			n++
		}
	}
	return n
}
