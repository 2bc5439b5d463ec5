package uow

import (
	"context"
	"errors"

	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/bundle"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/loan"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/user"
)

// ErrConflict signals an optimistic-concurrency failure: the entity version a
// caller read is no longer current. The whole transaction rolls back and the
// caller may retry with a fresh snapshot.
var ErrConflict = errors.New("conflicting concurrent update")

type Repos struct {
	Users       user.Repository
	Loans       loan.Repository
	Bundles     bundle.Repository
	Investments bundle.InvestmentRepository
}

// UnitOfWork is the multi-entity atomic commit boundary. Everything fn does
// through the passed repos commits together or not at all.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
