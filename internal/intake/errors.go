package intake

import "errors"

var (
	ErrMissingCredential = errors.New("missing credential")
	ErrService           = errors.New("agent service error")
	ErrValidation        = errors.New("result validation error")
)
