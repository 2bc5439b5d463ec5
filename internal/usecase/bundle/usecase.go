package bundle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/bundle"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/loan"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/uow"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/user"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/pkg/id"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/pkg/yield"

	"gorm.io/gorm"
)

// DefaultMaxRetries bounds the automatic retry of a claim that lost an
// optimistic-concurrency race. Sustained contention surfaces as ErrConflict
// to the caller instead of hanging.
const DefaultMaxRetries = 3

// Usecase is the bundle composer. It holds no state of its own and is safe to
// share across goroutines; all shared mutable state lives behind the uow.
type Usecase struct {
	loans      loan.Repository
	bundles    bundle.Repository
	uow        uow.UnitOfWork
	maxRetries int
}

func NewUsecase(loans loan.Repository, bundles bundle.Repository, tx uow.UnitOfWork, maxRetries int) *Usecase {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Usecase{loans: loans, bundles: bundles, uow: tx, maxRetries: maxRetries}
}

type CreateBundleInput struct {
	AdminID       string   `json:"admin_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	LoanIDs       []string `json:"loan_ids"`
	Margin        float64  `json:"margin"`
	MinInvestment float64  `json:"min_investment"`
}

type BundleDTO struct {
	BundleID       string     `json:"bundle_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	AdminID        string     `json:"admin_id"`
	Status         string     `json:"status"`
	LoanIDs        []string   `json:"loan_ids"`
	TotalValue     float64    `json:"total_value"`
	ExpectedReturn float64    `json:"expected_return"`
	RiskScore      float64    `json:"risk_score"`
	MinInvestment  float64    `json:"min_investment"`
	TermMonths     int        `json:"term_months"`
	InvestorIDs    []string   `json:"investor_ids,omitempty"`
	FundedAt       *time.Time `json:"funded_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToDTO(b *bundle.Bundle) *BundleDTO {
	return &BundleDTO{
		BundleID:       b.BundleID,
		Name:           b.Name,
		Description:    b.Description,
		AdminID:        b.AdminID,
		Status:         string(b.Status),
		LoanIDs:        b.LoanIDs,
		TotalValue:     b.TotalValue,
		ExpectedReturn: b.ExpectedReturn,
		RiskScore:      b.RiskScore,
		MinInvestment:  b.MinInvestment,
		TermMonths:     b.TermMonths,
		InvestorIDs:    b.InvestorIDs,
		FundedAt:       b.FundedAt,
		CreatedAt:      b.CreatedAt,
	}
}

// CreateBundle claims the requested loans into a new bundle, all or nothing.
// A lost race (some member loan changed between snapshot and commit) rolls
// back and retries with a fresh snapshot, up to maxRetries attempts.
func (u *Usecase) CreateBundle(ctx context.Context, in CreateBundleInput) (*BundleDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	var (
		dto *BundleDTO
		err error
	)
	for attempt := 0; attempt < u.maxRetries; attempt++ {
		dto, err = u.createBundleOnce(ctx, in)
		if !errors.Is(err, uow.ErrConflict) {
			return dto, err
		}
	}
	return nil, err
}

func validateInput(in CreateBundleInput) error {
	if len(in.AdminID) != 32 || in.Name == "" {
		return errors.New("invalid input")
	}
	if len(in.LoanIDs) == 0 {
		return errors.New("bundle needs at least one loan")
	}
	seen := make(map[string]struct{}, len(in.LoanIDs))
	for _, lid := range in.LoanIDs {
		if _, dup := seen[lid]; dup {
			return fmt.Errorf("duplicate loan id %s", lid)
		}
		seen[lid] = struct{}{}
	}
	if in.Margin < 0 || in.MinInvestment < 0 {
		return errors.New("invalid input")
	}
	return nil
}

func (u *Usecase) createBundleOnce(ctx context.Context, in CreateBundleInput) (*BundleDTO, error) {
	// Snapshot and validate outside the transaction; nothing is reserved yet.
	// The commit below revalidates every loan via its version counter, so a
	// loan claimed in between fails the CAS and the whole tx rolls back.
	snaps := make([]*loan.Loan, 0, len(in.LoanIDs))
	for _, lid := range in.LoanIDs {
		l, err := u.loans.GetByLoanID(ctx, lid)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", loan.ErrNotFound, lid)
		}
		if err != nil {
			return nil, err
		}
		if !l.Bundlable() {
			return nil, fmt.Errorf("%w: %s is %s", loan.ErrIneligible, lid, l.Status)
		}
		snaps = append(snaps, l)
	}

	amounts := make([]float64, len(snaps))
	rates := make([]float64, len(snaps))
	totalValue := 0.0
	termMonths := 0
	for i, l := range snaps {
		amounts[i] = l.Amount
		rates[i] = l.DefaultRate
		totalValue += l.Amount
		if l.TermMonths > termMonths {
			termMonths = l.TermMonths
		}
	}
	riskScore, err := yield.WeightedDefaultRate(amounts, rates)
	if err != nil {
		return nil, err
	}
	expectedReturn, err := yield.BundleRate(rates, in.Margin)
	if err != nil {
		return nil, err
	}

	b := &bundle.Bundle{
		BundleID:       id.NewID32(),
		Name:           in.Name,
		Description:    in.Description,
		AdminID:        in.AdminID,
		Status:         bundle.StatusActive,
		LoanIDs:        in.LoanIDs,
		TotalValue:     totalValue,
		ExpectedReturn: expectedReturn,
		RiskScore:      riskScore,
		MinInvestment:  in.MinInvestment,
		TermMonths:     termMonths,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		admin, err := r.Users.GetByUserID(ctx, in.AdminID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", user.ErrNotFound, in.AdminID)
		}
		if err != nil {
			return err
		}
		if admin.Role != user.RoleAdmin {
			return fmt.Errorf("%w: %s is %s", user.ErrRoleMismatch, admin.UserID, admin.Role)
		}

		if err := r.Bundles.Create(ctx, b); err != nil {
			return err
		}
		for _, l := range snaps {
			bid := b.BundleID
			l.Status = loan.StatusBundled
			l.BundleID = &bid
			if err := r.Loans.SaveVersioned(ctx, l); err != nil {
				return err
			}
		}

		admin.ManagedBundleIDs = append(admin.ManagedBundleIDs, b.BundleID)
		return r.Users.SaveVersioned(ctx, admin)
	})
	if err != nil {
		return nil, err
	}
	return ToDTO(b), nil
}

// SelectEligibleLoans exposes the candidate pool (approved, unclaimed) for
// callers assembling a loan selection interactively. It reserves nothing:
// races between selection and CreateBundle are resolved by the conflict
// retry, not prevented here.
func (u *Usecase) SelectEligibleLoans(ctx context.Context) ([]*loan.Loan, error) {
	return u.loans.ListAvailable(ctx)
}

func (u *Usecase) Get(ctx context.Context, bundleID string) (*BundleDTO, error) {
	b, err := u.bundles.GetByBundleID(ctx, bundleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", bundle.ErrNotFound, bundleID)
	}
	if err != nil {
		return nil, err
	}
	return ToDTO(b), nil
}
