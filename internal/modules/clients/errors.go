package clients

import "errors"

var (
	ErrValidation        = errors.New("client validation failed")
	ErrAlreadyRegistered = errors.New("client already registered")
	ErrNotRegistered     = errors.New("client not registered")
)
