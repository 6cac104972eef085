package voucher

import "errors"

var (
	ErrNotFound     = errors.New("booking not found")
	ErrRender       = errors.New("voucher could not be rendered")
	ErrNoRecipients = errors.New("no attendee has an email address")
	ErrDelivery     = errors.New("voucher email could not be sent")
)
