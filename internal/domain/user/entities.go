package user

import (
	"time"
)

type Role string

const (
	RoleBorrower Role = "borrower"
	RoleAdmin    Role = "admin"
	RoleInvestor Role = "investor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBorrower, RoleAdmin, RoleInvestor:
		return true
	}
	return false
}

// User participates as exactly one role. Role-specific fields are populated
// only for the matching role: CreditScore for borrowers, ManagedBundleIDs for
// admins, InvestedBundleIDs for investors.
type User struct {
	ID                uint64     `gorm:"primaryKey;column:id" json:"-"`
	UserID            string     `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Email             string     `gorm:"size:255;uniqueIndex:ux_users_email" json:"email"`
	Role              Role       `gorm:"type:enum('borrower','admin','investor')" json:"role"`
	FullName          string     `gorm:"size:255" json:"full_name"`
	CreditScore       *float64   `gorm:"type:decimal(6,2)" json:"credit_score,omitempty"`
	ManagedBundleIDs  []string   `gorm:"serializer:json;type:json" json:"managed_bundle_ids,omitempty"`
	InvestedBundleIDs []string   `gorm:"serializer:json;type:json" json:"invested_bundle_ids,omitempty"`
	Version           uint64     `gorm:"not null;default:0" json:"-"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
