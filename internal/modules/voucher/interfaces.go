package voucher

import (
	"context"

	"karting/internal/domain"
)

// BookingGetter loads the priced booking a voucher is rendered from,
// satisfied by the booking service.
type BookingGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// Mailer delivers a rendered voucher. The SMTP implementation lives in this
// package; tests swap in a recorder.
type Mailer interface {
	Send(to []string, subject, body, attachmentName string, attachment []byte) error
}
