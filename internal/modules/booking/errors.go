package booking

import "errors"

var (
	ErrValidation         = errors.New("booking validation failed")
	ErrNotFound           = errors.New("booking not found")
	ErrAlreadyFinal       = errors.New("booking is already in a final status")
	ErrPricingUnavailable = errors.New("pricing service unavailable")
	ErrPersistence        = errors.New("booking could not be persisted")
	ErrScheduleSync       = errors.New("schedule projection update failed")
)
