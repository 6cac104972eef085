package domain

import "time"

type BookingStatus string

const (
	BookingUnconfirmed BookingStatus = "unconfirmed"
	BookingConfirmed   BookingStatus = "confirmed"
	BookingCancelled   BookingStatus = "cancelled"
)

// Final reports whether the status admits no further transitions.
func (s BookingStatus) Final() bool {
	return s == BookingConfirmed || s == BookingCancelled
}

// Discount categories. At most one applies per attendee.
const (
	DiscountBirthday = "birthday"
	DiscountVisits   = "visits"
	DiscountGroup    = "integrantes"
	DiscountNone     = "none"
)

// DefaultTaxPct is the IVA percentage applied when a draft carries none.
const DefaultTaxPct = 19

// Attendee is one person on a booking, priced and discounted independently.
// Position preserves the order of the submitted sequence; the discount
// allocation is order-dependent.
type Attendee struct {
	RUT          string `json:"rut"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	DiscountType string `json:"discount_type,omitempty"`
	Price        int    `json:"price"`
	PriceWithTax int    `json:"price_with_tax"`
	Position     int    `json:"-"`
}

type Booking struct {
	ID          int64         `json:"id"`
	Date        string        `json:"date"`       // YYYY-MM-DD
	StartTime   string        `json:"start_time"` // HH:MM
	EndTime     string        `json:"end_time"`   // HH:MM, start + tier duration
	Status      BookingStatus `json:"status"`
	Tier        int           `json:"tier"` // laps or max minutes: 10, 15, 20
	NumOfPeople int           `json:"num_of_people"`
	Attendees   []Attendee    `json:"attendees"`
	BasePrice   int           `json:"base_price"`
	TaxPct      int           `json:"tax_pct"`
	TotalAmount int           `json:"total_amount"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Month returns the booking month as "01".."12".
func (b *Booking) Month() string {
	if len(b.Date) < 7 {
		return ""
	}
	return b.Date[5:7]
}

// DayMonth returns the booking date as "DD-MM", the key the birthday
// discount is matched against.
func (b *Booking) DayMonth() string {
	if len(b.Date) < 10 {
		return ""
	}
	return b.Date[8:10] + "-" + b.Date[5:7]
}

// LeadAttendee is the first attendee of the sequence, used for the rack
// projection label.
func (b *Booking) LeadAttendee() *Attendee {
	if len(b.Attendees) == 0 {
		return nil
	}
	return &b.Attendees[0]
}
