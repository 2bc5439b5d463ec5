package loan

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusBundled   Status = "bundled"
	StatusFunded    Status = "funded"
	StatusCompleted Status = "completed"
	StatusDefault   Status = "default"
)

// Loan is a single funding request. BundleID is a non-owning back-reference:
// it is set exactly once, when a bundle claims the loan, and must be non-nil
// iff the status is bundled, funded or completed.
type Loan struct {
	ID           uint64  `gorm:"primaryKey;column:id" json:"-"`
	LoanID       string  `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	BorrowerID   string  `gorm:"size:32;index:idx_loans_borrower" json:"borrower_id"`
	Amount       float64 `gorm:"type:decimal(18,2)" json:"amount"`
	InterestRate float64 `gorm:"type:decimal(6,4)" json:"interest_rate"`
	TermMonths   int     `gorm:"not null" json:"term_months"`
	Purpose      string  `gorm:"type:text" json:"purpose"`
	Status       Status  `gorm:"type:enum('pending','approved','rejected','bundled','funded','completed','default');default:'pending'" json:"status"`

	// Scoring-service output, recorded at approval time.
	CreditScore       float64 `gorm:"type:decimal(6,2)" json:"credit_score"`
	MonthlyIncome     float64 `gorm:"type:decimal(18,2)" json:"monthly_income"`
	DebtToIncomeRatio float64 `gorm:"type:decimal(6,4)" json:"debt_to_income_ratio"`
	EmploymentStatus  string  `gorm:"size:64" json:"employment_status"`
	DefaultRate       float64 `gorm:"type:decimal(6,4)" json:"default_rate"`

	BundleID    *string    `gorm:"size:32;index:idx_loans_bundle" json:"bundle_id,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	FundedAt    *time.Time `json:"funded_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Version   uint64    `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// Bundlable reports whether the loan can still be claimed by a bundle.
func (l *Loan) Bundlable() bool {
	return l.Status == StatusApproved && l.BundleID == nil
}
