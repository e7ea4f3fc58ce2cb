// v3
// internal/booking/client.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/iiishop/CASA0019/internal/timeline"
)

// ErrUpstreamNotOK is returned when the booking API answers 200 but flags the
// request as failed in the body.
var ErrUpstreamNotOK = errors.New("booking api returned ok=false")

type Client struct {
	http  *resty.Client
	url   string
	token string
	lid   string
	rooms []string
	log   *slog.Logger
}

func NewClient(apiURL, token, locationID string, rooms []string, log *slog.Logger) *Client {
	return &Client{
		http:  resty.New().SetTimeout(10 * time.Second),
		url:   apiURL,
		token: token,
		lid:   locationID,
		rooms: rooms,
		log:   log,
	}
}

// FetchDay pulls every booking for the location on the given date and groups
// them by room id. Every configured room gets an entry even when it has no
// reservations; bookings for rooms outside the configured set are dropped.
// Timestamps are kept as naive local wall-clock times so they line up with
// the simulated day regardless of the upstream offset.
func (c *Client) FetchDay(ctx context.Context, date string) (map[string][]timeline.Interval, error) {
	out := make(map[string][]timeline.Interval, len(c.rooms))
	tracked := make(map[string]bool, len(c.rooms))
	for _, r := range c.rooms {
		out[r] = nil
		tracked[r] = true
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"token": c.token,
			"lid":   c.lid,
			"date":  date,
		}).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("booking api %s returned %d: %s", c.url, resp.StatusCode(), snippet(resp.Body(), 200))
	}

	var payload bookingsResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	if !payload.OK {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamNotOK, payload.Error)
	}

	for _, b := range payload.Bookings {
		room := strconv.Itoa(b.EID)
		if !tracked[room] {
			continue
		}
		from, err := parseNaive(b.FromDate)
		if err != nil {
			return nil, fmt.Errorf("booking from_date %q: %w", b.FromDate, err)
		}
		to, err := parseNaive(b.ToDate)
		if err != nil {
			return nil, fmt.Errorf("booking to_date %q: %w", b.ToDate, err)
		}
		out[room] = append(out[room], timeline.Interval{Start: from, End: to})
	}
	c.log.Debug("bookings fetched", "date", date, "total", len(payload.Bookings))
	return out, nil
}

// parseNaive accepts both offset-qualified and bare ISO-8601 timestamps and
// strips the offset, keeping the wall-clock reading in local time.
func parseNaive(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05", s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local), nil
}

func snippet(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
