package booking

type AttendeeRequest struct {
	RUT   string `json:"rut" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

type CreateBookingRequest struct {
	Date        string            `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime   string            `json:"start_time" binding:"required"` // HH:MM
	Tier        int               `json:"tier" binding:"required"`
	NumOfPeople int               `json:"num_of_people" binding:"required"`
	TaxPct      *int              `json:"tax_pct"` // defaults to 19
	Attendees   []AttendeeRequest `json:"attendees" binding:"required,dive"`
}
