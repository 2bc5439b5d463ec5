package mysql

import (
	"context"

	bundleDomain "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/bundle"

	"gorm.io/gorm"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *bundleDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) ListByInvestorID(ctx context.Context, investorID string) ([]*bundleDomain.Investment, error) {
	var out []*bundleDomain.Investment
	res := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) SumByBundleID(ctx context.Context, bundleID string) (float64, error) {
	var total *float64
	res := r.db.WithContext(ctx).
		Model(&bundleDomain.Investment{}).
		Where("bundle_id = ?", bundleID).
		Select("SUM(amount)").
		Scan(&total)
	if res.Error != nil {
		return 0, res.Error
	}
	if total == nil { // no rows yet
		return 0, nil
	}
	return *total, nil
}
