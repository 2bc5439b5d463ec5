package investment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/bundle"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/loan"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/uow"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/user"
	bundleUC "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/usecase/bundle"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/pkg/id"

	"gorm.io/gorm"
)

const DefaultMaxRetries = 3

// Usecase is the investment ledger: it records capital commitments against
// active bundles and owns the funding transition. Stateless and safe to share.
type Usecase struct {
	bundles    bundle.Repository
	users      user.Repository
	uow        uow.UnitOfWork
	maxRetries int
}

func NewUsecase(bundles bundle.Repository, users user.Repository, tx uow.UnitOfWork, maxRetries int) *Usecase {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Usecase{bundles: bundles, users: users, uow: tx, maxRetries: maxRetries}
}

type InvestInput struct {
	InvestorID string  `json:"investor_id"`
	BundleID   string  `json:"bundle_id"`
	Amount     float64 `json:"amount"`
}

type InvestmentDTO struct {
	InvestmentID string    `json:"investment_id"`
	BundleID     string    `json:"bundle_id"`
	InvestorID   string    `json:"investor_id"`
	Amount       float64   `json:"amount"`
	BundleStatus string    `json:"bundle_status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Invest records one commitment. Both cross-reference lists (bundle investor
// list, investor bundle list) and the commitment row land in a single
// transaction: both sides or neither. Repeat commitments by the same investor
// accumulate as separate rows. When cumulative committed capital reaches the
// bundle's total value, the funding cascade runs inside the same transaction.
func (u *Usecase) Invest(ctx context.Context, in InvestInput) (*InvestmentDTO, error) {
	if len(in.InvestorID) != 32 || len(in.BundleID) != 32 || in.Amount <= 0 {
		return nil, errors.New("invalid input")
	}
	var (
		dto *InvestmentDTO
		err error
	)
	for attempt := 0; attempt < u.maxRetries; attempt++ {
		dto, err = u.investOnce(ctx, in)
		if !errors.Is(err, uow.ErrConflict) {
			return dto, err
		}
	}
	return nil, err
}

func (u *Usecase) investOnce(ctx context.Context, in InvestInput) (*InvestmentDTO, error) {
	var dto *InvestmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := getBundle(ctx, r, in.BundleID)
		if err != nil {
			return err
		}
		if b.Status != bundle.StatusActive {
			return fmt.Errorf("%w: %s is %s", bundle.ErrNotInvestable, b.BundleID, b.Status)
		}
		if in.Amount < b.MinInvestment {
			return fmt.Errorf("%w: amount %.2f below minimum %.2f", bundle.ErrNotInvestable, in.Amount, b.MinInvestment)
		}

		inv, err := r.Users.GetByUserID(ctx, in.InvestorID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", user.ErrNotFound, in.InvestorID)
		}
		if err != nil {
			return err
		}
		if inv.Role != user.RoleInvestor {
			return fmt.Errorf("%w: %s is %s", user.ErrRoleMismatch, inv.UserID, inv.Role)
		}

		rec := &bundle.Investment{
			InvestmentID: id.NewID32(),
			BundleID:     b.BundleID,
			InvestorID:   inv.UserID,
			Amount:       in.Amount,
		}
		if err := r.Investments.Create(ctx, rec); err != nil {
			return err
		}

		b.InvestorIDs = append(b.InvestorIDs, inv.UserID)
		if err := r.Bundles.SaveVersioned(ctx, b); err != nil {
			return err
		}
		inv.InvestedBundleIDs = append(inv.InvestedBundleIDs, b.BundleID)
		if err := r.Users.SaveVersioned(ctx, inv); err != nil {
			return err
		}

		committed, err := r.Investments.SumByBundleID(ctx, b.BundleID)
		if err != nil {
			return err
		}
		if committed >= b.TotalValue {
			if err := fundInTx(ctx, r, b); err != nil {
				return err
			}
		}

		dto = &InvestmentDTO{
			InvestmentID: rec.InvestmentID,
			BundleID:     rec.BundleID,
			InvestorID:   rec.InvestorID,
			Amount:       rec.Amount,
			BundleStatus: string(b.Status),
			CreatedAt:    rec.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// FundBundle is the explicit admin funding action: active → funded plus the
// member-loan cascade, in one transaction.
func (u *Usecase) FundBundle(ctx context.Context, bundleID string) (*bundleUC.BundleDTO, error) {
	var dto *bundleUC.BundleDTO
	var err error
	for attempt := 0; attempt < u.maxRetries; attempt++ {
		err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
			b, err := getBundle(ctx, r, bundleID)
			if err != nil {
				return err
			}
			if b.Status != bundle.StatusActive {
				return fmt.Errorf("%w: %s is %s", bundle.ErrInvalidTransition, b.BundleID, b.Status)
			}
			if err := fundInTx(ctx, r, b); err != nil {
				return err
			}
			dto = bundleUC.ToDTO(b)
			return nil
		})
		if !errors.Is(err, uow.ErrConflict) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// fundInTx cascades active → funded to the bundle and bundled → funded to
// every member loan. Runs inside an open transaction so a concurrent reader
// never observes a funded bundle with a still-bundled member loan.
func fundInTx(ctx context.Context, r uow.Repos, b *bundle.Bundle) error {
	now := time.Now().UTC()
	b.Status = bundle.StatusFunded
	b.FundedAt = &now
	if err := r.Bundles.SaveVersioned(ctx, b); err != nil {
		return err
	}

	loans, err := r.Loans.ListByBundleID(ctx, b.BundleID)
	if err != nil {
		return err
	}
	if len(loans) != len(b.LoanIDs) {
		return fmt.Errorf("bundle %s claims %d loans but %d reference it", b.BundleID, len(b.LoanIDs), len(loans))
	}
	for _, l := range loans {
		if l.Status != loan.StatusBundled {
			return fmt.Errorf("%w: member loan %s is %s", loan.ErrInvalidTransition, l.LoanID, l.Status)
		}
		l.Status = loan.StatusFunded
		l.FundedAt = &now
		if err := r.Loans.SaveVersioned(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

func (u *Usecase) ListInvestableBundles(ctx context.Context) ([]*bundleUC.BundleDTO, error) {
	bs, err := u.bundles.ListByStatus(ctx, bundle.StatusActive)
	if err != nil {
		return nil, err
	}
	out := make([]*bundleUC.BundleDTO, len(bs))
	for i, b := range bs {
		out[i] = bundleUC.ToDTO(b)
	}
	return out, nil
}

// ListInvestorPositions returns the bundles an investor holds commitments in.
// Repeat commitments produce duplicate references on the user record; the
// result is deduplicated, order preserved.
func (u *Usecase) ListInvestorPositions(ctx context.Context, investorID string) ([]*bundleUC.BundleDTO, error) {
	inv, err := u.users.GetByUserID(ctx, investorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", user.ErrNotFound, investorID)
	}
	if err != nil {
		return nil, err
	}
	if inv.Role != user.RoleInvestor {
		return nil, fmt.Errorf("%w: %s is %s", user.ErrRoleMismatch, inv.UserID, inv.Role)
	}

	seen := make(map[string]struct{}, len(inv.InvestedBundleIDs))
	ids := make([]string, 0, len(inv.InvestedBundleIDs))
	for _, bid := range inv.InvestedBundleIDs {
		if _, ok := seen[bid]; ok {
			continue
		}
		seen[bid] = struct{}{}
		ids = append(ids, bid)
	}

	bs, err := u.bundles.ListByBundleIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*bundleUC.BundleDTO, len(bs))
	for i, b := range bs {
		out[i] = bundleUC.ToDTO(b)
	}
	return out, nil
}

func getBundle(ctx context.Context, r uow.Repos, bundleID string) (*bundle.Bundle, error) {
	b, err := r.Bundles.GetByBundleID(ctx, bundleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", bundle.ErrNotFound, bundleID)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
