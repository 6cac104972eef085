package rack

import "errors"

var ErrValidation = errors.New("rack query validation failed")
