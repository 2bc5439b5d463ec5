package mysql

import (
	"context"
	"errors"
	"math"
	"testing"

	bundleDomain "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/bundle"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/uow"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/pkg/id"

	"gorm.io/gorm"
)

func makeBundle(bundleID, adminID string, loanIDs []string) *bundleDomain.Bundle {
	return &bundleDomain.Bundle{
		BundleID:       bundleID,
		Name:           "Q3 SME bundle",
		Description:    "small business loans",
		AdminID:        adminID,
		Status:         bundleDomain.StatusActive,
		LoanIDs:        loanIDs,
		TotalValue:     50_000.00,
		ExpectedReturn: 0.17,
		RiskScore:      0.12,
		MinInvestment:  1_000.00,
		TermMonths:     36,
	}
}

func TestBundleCreateAndGet_RoundTripsLists(t *testing.T) {
	db := openTestDB(t)
	repo := NewBundleRepository(db)
	ctx := context.Background()

	bid := id.NewID32()
	loanIDs := []string{id.NewID32(), id.NewID32(), id.NewID32()}
	if err := repo.Create(ctx, makeBundle(bid, id.NewID32(), loanIDs)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByBundleID(ctx, bid)
	if err != nil {
		t.Fatalf("GetByBundleID: %v", err)
	}
	if len(got.LoanIDs) != 3 {
		t.Fatalf("loan_ids did not round-trip: %+v", got.LoanIDs)
	}
	for i, lid := range loanIDs {
		if got.LoanIDs[i] != lid {
			t.Fatalf("loan_ids[%d] = %s, want %s", i, got.LoanIDs[i], lid)
		}
	}
}

func TestBundleGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewBundleRepository(db)

	_, err := repo.GetByBundleID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestBundleListByStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewBundleRepository(db)
	ctx := context.Background()

	active := makeBundle(id.NewID32(), id.NewID32(), []string{id.NewID32()})
	if err := repo.Create(ctx, active); err != nil {
		t.Fatal(err)
	}
	funded := makeBundle(id.NewID32(), id.NewID32(), []string{id.NewID32()})
	funded.Status = bundleDomain.StatusFunded
	if err := repo.Create(ctx, funded); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ListByStatus(ctx, bundleDomain.StatusActive)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(got) != 1 || got[0].BundleID != active.BundleID {
		t.Fatalf("unexpected bundles: %+v", got)
	}
}

func TestBundleListByBundleIDs_EmptyInput(t *testing.T) {
	db := openTestDB(t)
	repo := NewBundleRepository(db)

	got, err := repo.ListByBundleIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListByBundleIDs: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty result, got %+v", got)
	}
}

func TestBundleSaveVersioned_Conflict(t *testing.T) {
	db := openTestDB(t)
	repo := NewBundleRepository(db)
	ctx := context.Background()

	b := makeBundle(id.NewID32(), id.NewID32(), []string{id.NewID32()})
	if err := repo.Create(ctx, b); err != nil {
		t.Fatal(err)
	}

	other, err := repo.GetByBundleID(ctx, b.BundleID)
	if err != nil {
		t.Fatal(err)
	}
	other.InvestorIDs = append(other.InvestorIDs, id.NewID32())
	if err := repo.SaveVersioned(ctx, other); err != nil {
		t.Fatalf("concurrent SaveVersioned: %v", err)
	}

	b.Status = bundleDomain.StatusFunded
	if err := repo.SaveVersioned(ctx, b); !errors.Is(err, uow.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestInvestmentSumByBundleID(t *testing.T) {
	db := openTestDB(t)
	repo := NewInvestmentRepository(db)
	ctx := context.Background()

	bid := id.NewID32()
	investor := id.NewID32()
	for _, amt := range []float64{1_000, 2_500.50} {
		inv := &bundleDomain.Investment{
			InvestmentID: id.NewID32(),
			BundleID:     bid,
			InvestorID:   investor,
			Amount:       amt,
		}
		if err := repo.Create(ctx, inv); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	total, err := repo.SumByBundleID(ctx, bid)
	if err != nil {
		t.Fatalf("SumByBundleID: %v", err)
	}
	if math.Abs(total-3_500.50) > 1e-9 {
		t.Fatalf("total = %v, want 3500.50", total)
	}

	// no commitments yet → zero, not an error
	empty, err := repo.SumByBundleID(ctx, id.NewID32())
	if err != nil {
		t.Fatalf("SumByBundleID empty: %v", err)
	}
	if empty != 0 {
		t.Fatalf("empty total = %v, want 0", empty)
	}
}

func TestInvestmentListByInvestorID(t *testing.T) {
	db := openTestDB(t)
	repo := NewInvestmentRepository(db)
	ctx := context.Background()

	investor := id.NewID32()
	for i := 0; i < 2; i++ {
		inv := &bundleDomain.Investment{
			InvestmentID: id.NewID32(),
			BundleID:     id.NewID32(),
			InvestorID:   investor,
			Amount:       500,
		}
		if err := repo.Create(ctx, inv); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.ListByInvestorID(ctx, investor)
	if err != nil {
		t.Fatalf("ListByInvestorID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 commitments, got %d", len(got))
	}
}
