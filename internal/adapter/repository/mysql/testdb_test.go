package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM, JSON as TEXT) ---

type userSQLite struct {
	ID                uint64     `gorm:"primaryKey;column:id"`
	UserID            string     `gorm:"size:32;column:user_id"`
	Email             string     `gorm:"column:email"`
	Role              string     `gorm:"type:text;column:role"` // ← no enum
	FullName          string     `gorm:"column:full_name"`
	CreditScore       *float64   `gorm:"column:credit_score"`
	ManagedBundleIDs  string     `gorm:"type:text;column:managed_bundle_ids"`
	InvestedBundleIDs string     `gorm:"type:text;column:invested_bundle_ids"`
	Version           uint64     `gorm:"column:version"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (userSQLite) TableName() string { return "users" }

type loanSQLite struct {
	ID                uint64     `gorm:"primaryKey;column:id"`
	LoanID            string     `gorm:"size:32;column:loan_id"`
	BorrowerID        string     `gorm:"size:32;column:borrower_id"`
	Amount            float64    `gorm:"column:amount"`
	InterestRate      float64    `gorm:"column:interest_rate"`
	TermMonths        int        `gorm:"column:term_months"`
	Purpose           string     `gorm:"column:purpose"`
	Status            string     `gorm:"type:text;column:status"` // ← no enum
	CreditScore       float64    `gorm:"column:credit_score"`
	MonthlyIncome     float64    `gorm:"column:monthly_income"`
	DebtToIncomeRatio float64    `gorm:"column:debt_to_income_ratio"`
	EmploymentStatus  string     `gorm:"column:employment_status"`
	DefaultRate       float64    `gorm:"column:default_rate"`
	BundleID          *string    `gorm:"size:32;column:bundle_id"`
	ApprovedAt        *time.Time `gorm:"column:approved_at"`
	FundedAt          *time.Time `gorm:"column:funded_at"`
	CompletedAt       *time.Time `gorm:"column:completed_at"`
	Version           uint64     `gorm:"column:version"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type bundleSQLite struct {
	ID             uint64     `gorm:"primaryKey;column:id"`
	BundleID       string     `gorm:"size:32;column:bundle_id"`
	Name           string     `gorm:"column:name"`
	Description    string     `gorm:"column:description"`
	AdminID        string     `gorm:"size:32;column:admin_id"`
	Status         string     `gorm:"type:text;column:status"` // ← no enum
	LoanIDs        string     `gorm:"type:text;column:loan_ids"`
	TotalValue     float64    `gorm:"column:total_value"`
	ExpectedReturn float64    `gorm:"column:expected_return"`
	RiskScore      float64    `gorm:"column:risk_score"`
	MinInvestment  float64    `gorm:"column:min_investment"`
	TermMonths     int        `gorm:"column:term_months"`
	InvestorIDs    string     `gorm:"type:text;column:investor_ids"`
	FundedAt       *time.Time `gorm:"column:funded_at"`
	CompletedAt    *time.Time `gorm:"column:completed_at"`
	Version        uint64     `gorm:"column:version"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (bundleSQLite) TableName() string { return "bundles" }

type investmentSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	InvestmentID string    `gorm:"size:32;column:investment_id"`
	BundleID     string    `gorm:"size:32;column:bundle_id"`
	InvestorID   string    `gorm:"size:32;column:investor_id"`
	Amount       float64   `gorm:"column:amount"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (investmentSQLite) TableName() string { return "investments" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, NOT the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}, &loanSQLite{}, &bundleSQLite{}, &investmentSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
