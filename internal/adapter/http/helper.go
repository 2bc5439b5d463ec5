package http

import (
	"errors"
	"net/http"

	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/bundle"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/loan"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/uow"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/user"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/pkg/yield"
)

// errStatus maps domain errors to HTTP status codes. Unknown errors are
// treated as bad requests rather than leaking internals as 500s.
func errStatus(err error) int {
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, bundle.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, uow.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, loan.ErrIneligible),
		errors.Is(err, loan.ErrInvalidTransition),
		errors.Is(err, bundle.ErrNotInvestable),
		errors.Is(err, bundle.ErrInvalidTransition),
		errors.Is(err, user.ErrRoleMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, yield.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
