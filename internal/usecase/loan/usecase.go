package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/loan"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo loan.Repository }

func NewUsecase(r loan.Repository) *Usecase { return &Usecase{repo: r} }

type CreateLoanInput struct {
	BorrowerID        string  `json:"borrower_id"`
	Amount            float64 `json:"amount"`
	InterestRate      float64 `json:"interest_rate"`
	TermMonths        int     `json:"term_months"`
	Purpose           string  `json:"purpose"`
	MonthlyIncome     float64 `json:"monthly_income"`
	DebtToIncomeRatio float64 `json:"debt_to_income_ratio"`
	EmploymentStatus  string  `json:"employment_status"`
}

// ApproveLoanInput carries the credit scoring service's verdict for a pending
// loan. The scoring model itself is an external collaborator; its output is
// an opaque numeric input here.
type ApproveLoanInput struct {
	LoanID      string  `json:"loan_id"`
	CreditScore float64 `json:"credit_score"`
	DefaultRate float64 `json:"default_rate"`
}

type LoanDTO struct {
	LoanID       string     `json:"loan_id"`
	BorrowerID   string     `json:"borrower_id"`
	Amount       float64    `json:"amount"`
	InterestRate float64    `json:"interest_rate"`
	TermMonths   int        `json:"term_months"`
	Purpose      string     `json:"purpose"`
	Status       string     `json:"status"`
	CreditScore  float64    `json:"credit_score"`
	DefaultRate  float64    `json:"default_rate"`
	BundleID     *string    `json:"bundle_id,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:       l.LoanID,
		BorrowerID:   l.BorrowerID,
		Amount:       l.Amount,
		InterestRate: l.InterestRate,
		TermMonths:   l.TermMonths,
		Purpose:      l.Purpose,
		Status:       string(l.Status),
		CreditScore:  l.CreditScore,
		DefaultRate:  l.DefaultRate,
		BundleID:     l.BundleID,
		ApprovedAt:   l.ApprovedAt,
		CreatedAt:    l.CreatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if len(in.BorrowerID) != 32 || in.Amount <= 0 || in.TermMonths <= 0 {
		return nil, errors.New("invalid input")
	}

	l := &loan.Loan{
		LoanID:            id.NewID32(),
		BorrowerID:        in.BorrowerID,
		Amount:            in.Amount,
		InterestRate:      in.InterestRate,
		TermMonths:        in.TermMonths,
		Purpose:           in.Purpose,
		Status:            loan.StatusPending,
		MonthlyIncome:     in.MonthlyIncome,
		DebtToIncomeRatio: in.DebtToIncomeRatio,
		EmploymentStatus:  in.EmploymentStatus,
	}

	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Approve moves a pending loan to approved and records the scoring output.
func (u *Usecase) Approve(ctx context.Context, in ApproveLoanInput) (*LoanDTO, error) {
	if in.DefaultRate < 0 || in.DefaultRate >= 1 {
		return nil, fmt.Errorf("default rate %v outside [0,1)", in.DefaultRate)
	}
	l, err := u.get(ctx, in.LoanID)
	if err != nil {
		return nil, err
	}
	if l.Status != loan.StatusPending {
		return nil, fmt.Errorf("%w: %s is %s", loan.ErrInvalidTransition, l.LoanID, l.Status)
	}

	now := time.Now().UTC()
	l.Status = loan.StatusApproved
	l.CreditScore = in.CreditScore
	l.DefaultRate = in.DefaultRate
	l.ApprovedAt = &now
	if err := u.repo.SaveVersioned(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Reject moves a pending loan to its terminal rejected state.
func (u *Usecase) Reject(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.get(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if l.Status != loan.StatusPending {
		return nil, fmt.Errorf("%w: %s is %s", loan.ErrInvalidTransition, l.LoanID, l.Status)
	}
	l.Status = loan.StatusRejected
	if err := u.repo.SaveVersioned(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.get(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) get(ctx context.Context, loanID string) (*loan.Loan, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", loan.ErrNotFound, loanID)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}
