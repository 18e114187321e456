package oracle

import "errors"

// Sentinel errors for oracle operations.
var (
	ErrInvalidRequest = errors.New("invalid oracle request")
	ErrNonConformant  = errors.New("response does not conform to schema")
)
