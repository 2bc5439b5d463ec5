package loan

import "errors"

var (
	ErrNotFound          = errors.New("loan not found")
	ErrIneligible        = errors.New("loan not eligible for bundling")
	ErrInvalidTransition = errors.New("invalid loan state transition")
)
