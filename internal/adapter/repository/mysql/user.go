package mysql

import (
	"context"

	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/uow"
	userDomain "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) SaveVersioned(ctx context.Context, u *userDomain.User) error {
	prev := u.Version
	u.Version = prev + 1
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("id = ? AND version = ?", u.ID, prev).
		Select("*").Omit("id", "created_at").
		Updates(u)
	if res.Error != nil {
		u.Version = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		u.Version = prev
		return uow.ErrConflict
	}
	return nil
}
