package bundle

import "context"

type Repository interface {
	Create(ctx context.Context, b *Bundle) error
	GetByBundleID(ctx context.Context, bundleID string) (*Bundle, error)
	ListByStatus(ctx context.Context, st Status) ([]*Bundle, error)
	ListByBundleIDs(ctx context.Context, bundleIDs []string) ([]*Bundle, error)
	// SaveVersioned persists b only if its version counter is unchanged in
	// storage; a mismatch returns uow.ErrConflict.
	SaveVersioned(ctx context.Context, b *Bundle) error
}

type InvestmentRepository interface {
	Create(ctx context.Context, inv *Investment) error
	ListByInvestorID(ctx context.Context, investorID string) ([]*Investment, error)
	// SumByBundleID returns cumulative committed capital for a bundle.
	SumByBundleID(ctx context.Context, bundleID string) (float64, error)
}
