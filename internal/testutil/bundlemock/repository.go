package bundlemock

import (
	"context"
	"errors"

	domain "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/bundle"
)

var errUnimplemented = errors.New("bundlemock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, b *domain.Bundle) error
	GetByBundleIDFn   func(ctx context.Context, bundleID string) (*domain.Bundle, error)
	ListByStatusFn    func(ctx context.Context, st domain.Status) ([]*domain.Bundle, error)
	ListByBundleIDsFn func(ctx context.Context, bundleIDs []string) ([]*domain.Bundle, error)
	SaveVersionedFn   func(ctx context.Context, b *domain.Bundle) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, b *domain.Bundle) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBundleID(ctx context.Context, bundleID string) (*domain.Bundle, error) {
	if m.GetByBundleIDFn != nil {
		return m.GetByBundleIDFn(ctx, bundleID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByStatus(ctx context.Context, st domain.Status) ([]*domain.Bundle, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, st)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByBundleIDs(ctx context.Context, bundleIDs []string) ([]*domain.Bundle, error) {
	if m.ListByBundleIDsFn != nil {
		return m.ListByBundleIDsFn(ctx, bundleIDs)
	}
	return nil, errUnimplemented
}

func (m *Repo) SaveVersioned(ctx context.Context, b *domain.Bundle) error {
	if m.SaveVersionedFn != nil {
		return m.SaveVersionedFn(ctx, b)
	}
	return nil
}

// InvestmentRepo is a function-backed mock for domain.InvestmentRepository.
type InvestmentRepo struct {
	CreateFn           func(ctx context.Context, inv *domain.Investment) error
	ListByInvestorIDFn func(ctx context.Context, investorID string) ([]*domain.Investment, error)
	SumByBundleIDFn    func(ctx context.Context, bundleID string) (float64, error)
}

var _ domain.InvestmentRepository = (*InvestmentRepo)(nil)

func (m *InvestmentRepo) Create(ctx context.Context, inv *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *InvestmentRepo) ListByInvestorID(ctx context.Context, investorID string) ([]*domain.Investment, error) {
	if m.ListByInvestorIDFn != nil {
		return m.ListByInvestorIDFn(ctx, investorID)
	}
	return nil, errUnimplemented
}

func (m *InvestmentRepo) SumByBundleID(ctx context.Context, bundleID string) (float64, error) {
	if m.SumByBundleIDFn != nil {
		return m.SumByBundleIDFn(ctx, bundleID)
	}
	return 0, errUnimplemented
}
