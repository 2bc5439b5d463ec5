package mysql

import (
	"context"

	bundleDomain "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/bundle"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/uow"

	"gorm.io/gorm"
)

type BundleRepository struct{ db *gorm.DB }

func NewBundleRepository(db *gorm.DB) *BundleRepository { return &BundleRepository{db: db} }

func (r *BundleRepository) Create(ctx context.Context, b *bundleDomain.Bundle) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BundleRepository) GetByBundleID(ctx context.Context, bundleID string) (*bundleDomain.Bundle, error) {
	var out bundleDomain.Bundle
	res := r.db.WithContext(ctx).Where("bundle_id = ?", bundleID).First(&out)
	return &out, res.Error
}

func (r *BundleRepository) ListByStatus(ctx context.Context, st bundleDomain.Status) ([]*bundleDomain.Bundle, error) {
	var out []*bundleDomain.Bundle
	res := r.db.WithContext(ctx).
		Where("status = ?", st).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *BundleRepository) ListByBundleIDs(ctx context.Context, bundleIDs []string) ([]*bundleDomain.Bundle, error) {
	if len(bundleIDs) == 0 {
		return nil, nil
	}
	var out []*bundleDomain.Bundle
	res := r.db.WithContext(ctx).
		Where("bundle_id IN ?", bundleIDs).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *BundleRepository) SaveVersioned(ctx context.Context, b *bundleDomain.Bundle) error {
	prev := b.Version
	b.Version = prev + 1
	res := r.db.WithContext(ctx).
		Model(&bundleDomain.Bundle{}).
		Where("id = ? AND version = ?", b.ID, prev).
		Select("*").Omit("id", "created_at").
		Updates(b)
	if res.Error != nil {
		b.Version = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		b.Version = prev
		return uow.ErrConflict
	}
	return nil
}
