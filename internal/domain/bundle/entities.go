package bundle

import (
	"time"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusFunded    Status = "funded"
	StatusCompleted Status = "completed"
	StatusClosed    Status = "closed"
)

// Bundle groups a fixed set of approved loans into one investable unit.
// LoanIDs is a closed membership list: set at creation, never appended.
// TotalValue is a snapshot of the member loan amounts at claim time.
type Bundle struct {
	ID             uint64   `gorm:"primaryKey;column:id" json:"-"`
	BundleID       string   `gorm:"size:32;uniqueIndex:ux_bundles_bundle_id" json:"bundle_id"`
	Name           string   `gorm:"size:255" json:"name"`
	Description    string   `gorm:"type:text" json:"description"`
	AdminID        string   `gorm:"size:32;index:idx_bundles_admin" json:"admin_id"`
	Status         Status   `gorm:"type:enum('active','funded','completed','closed');default:'active'" json:"status"`
	LoanIDs        []string `gorm:"serializer:json;type:json" json:"loan_ids"`
	TotalValue     float64  `gorm:"type:decimal(18,2)" json:"total_value"`
	ExpectedReturn float64  `gorm:"type:decimal(6,4)" json:"expected_return"`
	RiskScore      float64  `gorm:"type:decimal(6,4)" json:"risk_score"`
	MinInvestment  float64  `gorm:"type:decimal(18,2)" json:"min_investment"`
	TermMonths     int      `gorm:"not null" json:"term_months"`

	InvestorIDs []string   `gorm:"serializer:json;type:json" json:"investor_ids,omitempty"`
	FundedAt    *time.Time `json:"funded_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Version   uint64    `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Bundle) TableName() string { return "bundles" }

// Investment is one capital commitment by an investor against a bundle.
// Repeat commitments by the same investor are tracked as separate rows, not
// merged; cumulative committed capital is the sum over rows.
type Investment struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID string    `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	BundleID     string    `gorm:"size:32;index:idx_investments_bundle" json:"bundle_id"`
	InvestorID   string    `gorm:"size:32;index:idx_investments_investor" json:"investor_id"`
	Amount       float64   `gorm:"type:decimal(18,2)" json:"amount"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Investment) TableName() string { return "investments" }
