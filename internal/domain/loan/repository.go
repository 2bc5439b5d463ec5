package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// ListAvailable returns the bundling candidate pool: approved loans with
	// no bundle reference, as a single consistent snapshot.
	ListAvailable(ctx context.Context) ([]*Loan, error)
	ListByBundleID(ctx context.Context, bundleID string) ([]*Loan, error)
	Save(ctx context.Context, l *Loan) error
	// SaveVersioned persists l only if its version counter is unchanged in
	// storage; a mismatch returns uow.ErrConflict.
	SaveVersioned(ctx context.Context, l *Loan) error
}
