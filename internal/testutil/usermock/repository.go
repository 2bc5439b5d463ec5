package usermock

import (
	"context"
	"errors"

	domain "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/user"
)

var errUnimplemented = errors.New("usermock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, u *domain.User) error
	GetByUserIDFn   func(ctx context.Context, userID string) (*domain.User, error)
	SaveVersionedFn func(ctx context.Context, u *domain.User) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *Repo) SaveVersioned(ctx context.Context, u *domain.User) error {
	if m.SaveVersionedFn != nil {
		return m.SaveVersionedFn(ctx, u)
	}
	return nil
}
