package bundle

import "errors"

var (
	ErrNotFound          = errors.New("bundle not found")
	ErrNotInvestable     = errors.New("bundle not open for investment")
	ErrInvalidTransition = errors.New("invalid bundle state transition")
)
