// v1
// internal/booking/models.go
package booking

// Booking is one reservation row from the LibCal bookings endpoint. The
// upstream payload carries many more fields; only the ones the grouping
// needs are decoded.
type Booking struct {
	EID      int    `json:"eid"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

type bookingsResponse struct {
	OK       bool      `json:"ok"`
	Error    string    `json:"error"`
	Bookings []Booking `json:"bookings"`
}
