package loanmock

import (
	"context"
	"errors"

	domain "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/loan"
)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled ones fail loudly.
type Repo struct {
	CreateFn         func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn    func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListAvailableFn  func(ctx context.Context) ([]*domain.Loan, error)
	ListByBundleIDFn func(ctx context.Context, bundleID string) ([]*domain.Loan, error)
	SaveFn           func(ctx context.Context, l *domain.Loan) error
	SaveVersionedFn  func(ctx context.Context, l *domain.Loan) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListAvailable(ctx context.Context) ([]*domain.Loan, error) {
	if m.ListAvailableFn != nil {
		return m.ListAvailableFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByBundleID(ctx context.Context, bundleID string) ([]*domain.Loan, error) {
	if m.ListByBundleIDFn != nil {
		return m.ListByBundleIDFn(ctx, bundleID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) SaveVersioned(ctx context.Context, l *domain.Loan) error {
	if m.SaveVersionedFn != nil {
		return m.SaveVersionedFn(ctx, l)
	}
	return nil
}
