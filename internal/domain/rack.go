package domain

// RackEntry is the denormalized weekly-schedule projection of a confirmed
// booking. Created on confirm, removed on cancel; never authoritative.
type RackEntry struct {
	BookingID  int64  `json:"booking_id"`
	Date       string `json:"date"`       // YYYY-MM-DD
	StartTime  string `json:"start_time"` // HH:MM
	EndTime    string `json:"end_time"`   // HH:MM
	Status     string `json:"status"`
	ClientName string `json:"client_name"` // lead attendee
}
