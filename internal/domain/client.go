package domain

import "time"

// Client is a registered customer, keyed by national ID (RUT, "12345678-9").
type Client struct {
	RUT           string    `json:"rut"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Birthday      string    `json:"birthday"` // DD-MM-YYYY
	MonthlyVisits int       `json:"monthly_visits"`
	CreatedAt     time.Time `json:"created_at"`
}

// BirthdayDayMonth returns the "DD-MM" prefix compared against a booking
// date, or "" when no birthday is recorded.
func (c *Client) BirthdayDayMonth() string {
	if len(c.Birthday) < 5 {
		return ""
	}
	return c.Birthday[:5]
}
