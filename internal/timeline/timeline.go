// v1
// internal/timeline/timeline.go
package timeline

import "time"

// Slot labels carried in the published timeline payload.
const (
	SlotBooked = "booked"
	SlotFree   = "free"
)

// Interval is a half-open [Start, End) reservation window in naive local time.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the half-open intervals [slotStart, slotEnd) and
// [bookStart, bookEnd) intersect.
func Overlaps(slotStart, slotEnd, bookStart, bookEnd time.Time) bool {
	return slotStart.Before(bookEnd) && bookStart.Before(slotEnd)
}

// Build walks [windowStart, windowEnd) in slotWidth steps and labels each slot
// SlotBooked as soon as one reservation overlaps it, SlotFree otherwise.
// Reservation order does not matter. The last slot is emitted whenever it
// starts inside the window, even if it extends past windowEnd.
func Build(reservations []Interval, windowStart, windowEnd time.Time, slotWidth time.Duration) []string {
	var capacity int
	if span := windowEnd.Sub(windowStart); span > 0 {
		capacity = int((span + slotWidth - 1) / slotWidth)
	}
	labels := make([]string, 0, capacity)
	for current := windowStart; current.Before(windowEnd); current = current.Add(slotWidth) {
		slotEnd := current.Add(slotWidth)
		label := SlotFree
		for _, r := range reservations {
			if Overlaps(current, slotEnd, r.Start, r.End) {
				label = SlotBooked
				break
			}
		}
		labels = append(labels, label)
	}
	return labels
}
