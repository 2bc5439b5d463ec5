package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/user"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo user.Repository }

func NewUsecase(r user.Repository) *Usecase { return &Usecase{repo: r} }

type CreateUserInput struct {
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	FullName    string   `json:"full_name"`
	CreditScore *float64 `json:"credit_score,omitempty"`
}

type UserDTO struct {
	UserID            string    `json:"user_id"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	FullName          string    `json:"full_name"`
	CreditScore       *float64  `json:"credit_score,omitempty"`
	ManagedBundleIDs  []string  `json:"managed_bundle_ids,omitempty"`
	InvestedBundleIDs []string  `json:"invested_bundle_ids,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func toDTO(u *user.User) *UserDTO {
	return &UserDTO{
		UserID:            u.UserID,
		Email:             u.Email,
		Role:              string(u.Role),
		FullName:          u.FullName,
		CreditScore:       u.CreditScore,
		ManagedBundleIDs:  u.ManagedBundleIDs,
		InvestedBundleIDs: u.InvestedBundleIDs,
		CreatedAt:         u.CreatedAt,
	}
}

func (uc *Usecase) Create(ctx context.Context, in CreateUserInput) (*UserDTO, error) {
	role := user.Role(strings.ToLower(in.Role))
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", in.Role)
	}
	if in.Email == "" || in.FullName == "" {
		return nil, errors.New("invalid input")
	}
	// Role-specific fields only for the matching role.
	if in.CreditScore != nil && role != user.RoleBorrower {
		return nil, fmt.Errorf("credit score only applies to borrowers, got role %q", role)
	}

	u := &user.User{
		UserID:      id.NewID32(),
		Email:       in.Email,
		Role:        role,
		FullName:    in.FullName,
		CreditScore: in.CreditScore,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

func (uc *Usecase) Get(ctx context.Context, userID string) (*UserDTO, error) {
	u, err := uc.repo.GetByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", user.ErrNotFound, userID)
	}
	if err != nil {
		return nil, err
	}
	return toDTO(u), nil
}
