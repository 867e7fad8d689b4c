package showtrip

import "errors"

// ErrInvalidInput reports a non-numeric or out-of-range interactive
// selection. It ends the session immediately; selections are not retried.
var ErrInvalidInput = errors.New("invalid input")
