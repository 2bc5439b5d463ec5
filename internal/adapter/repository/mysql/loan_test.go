package mysql

import (
	"context"
	"errors"
	"testing"

	domain "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/loan"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/domain/uow"
	"github.com/xhcarina/HackPrinceton25-Spring-Bundle/pkg/id"

	"gorm.io/gorm"
)

func makeLoan(loanID, borrowerID string, status domain.Status) *domain.Loan {
	return &domain.Loan{
		LoanID:       loanID,
		BorrowerID:   borrowerID,
		Amount:       10_000.00,
		InterestRate: 0.1200,
		TermMonths:   24,
		Purpose:      "working capital",
		Status:       status,
		DefaultRate:  0.10,
	}
}

func TestCreateAndGetByLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	borrower := id.NewID32()

	l := makeLoan(loanID, borrower, domain.StatusPending)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.LoanID != loanID || got.BorrowerID != borrower || got.Status != domain.StatusPending {
		t.Errorf("unexpected loan: %+v", got)
	}
}

func TestGetByLoanID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	_, err := repo.GetByLoanID(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestListAvailable_FiltersClaimedAndUnapproved(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	available := id.NewID32()
	if err := repo.Create(ctx, makeLoan(available, id.NewID32(), domain.StatusApproved)); err != nil {
		t.Fatal(err)
	}
	// pending: not eligible
	if err := repo.Create(ctx, makeLoan(id.NewID32(), id.NewID32(), domain.StatusPending)); err != nil {
		t.Fatal(err)
	}
	// approved but already claimed
	claimed := makeLoan(id.NewID32(), id.NewID32(), domain.StatusBundled)
	bid := id.NewID32()
	claimed.BundleID = &bid
	if err := repo.Create(ctx, claimed); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ListAvailable(ctx)
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(got) != 1 || got[0].LoanID != available {
		t.Fatalf("unexpected pool: %+v", got)
	}
}

func TestListByBundleID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	bid := id.NewID32()
	for i := 0; i < 2; i++ {
		l := makeLoan(id.NewID32(), id.NewID32(), domain.StatusBundled)
		l.BundleID = &bid
		if err := repo.Create(ctx, l); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.Create(ctx, makeLoan(id.NewID32(), id.NewID32(), domain.StatusApproved)); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ListByBundleID(ctx, bid)
	if err != nil {
		t.Fatalf("ListByBundleID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 member loans, got %d", len(got))
	}
}

func TestSaveVersioned_BumpsVersion(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(id.NewID32(), id.NewID32(), domain.StatusPending)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	l.Status = domain.StatusApproved
	if err := repo.SaveVersioned(ctx, l); err != nil {
		t.Fatalf("SaveVersioned: %v", err)
	}
	if l.Version != 1 {
		t.Fatalf("version = %d, want 1", l.Version)
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != domain.StatusApproved || got.Version != 1 {
		t.Fatalf("unexpected loan after save: %+v", got)
	}
}

func TestSaveVersioned_StaleVersionConflicts(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(id.NewID32(), id.NewID32(), domain.StatusApproved)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Another caller updates the same loan first.
	other, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatal(err)
	}
	other.Status = domain.StatusBundled
	if err := repo.SaveVersioned(ctx, other); err != nil {
		t.Fatalf("concurrent SaveVersioned: %v", err)
	}

	// Our stale snapshot must lose the race.
	l.Status = domain.StatusBundled
	if err := repo.SaveVersioned(ctx, l); !errors.Is(err, uow.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if l.Version != 0 {
		t.Fatalf("failed CAS must not bump the in-memory version, got %d", l.Version)
	}
}

func TestTx_Commit(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	err := repo.Tx(ctx, func(r domain.Repository) error {
		return r.Create(ctx, makeLoan(loanID, id.NewID32(), domain.StatusPending))
	})
	if err != nil {
		t.Fatalf("Tx commit: %v", err)
	}

	if _, err := repo.GetByLoanID(ctx, loanID); err != nil {
		t.Fatalf("GetByLoanID after commit: %v", err)
	}
}

func TestTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	wantErr := errors.New("boom")

	_ = repo.Tx(ctx, func(r domain.Repository) error {
		if err := r.Create(ctx, makeLoan(loanID, id.NewID32(), domain.StatusPending)); err != nil {
			return err
		}
		return wantErr // force rollback
	})

	_, err := repo.GetByLoanID(ctx, loanID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found after rollback, got %v", err)
	}
}
