package mysql

import (
	"context"
	"errors"
	"testing"

	catalogDomain "compras-backend/internal/domain/catalog"
	ledgerDomain "compras-backend/internal/domain/ledger"
	orderDomain "compras-backend/internal/domain/order"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB and migrates the full schema.
// TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey, same as with the mysql driver.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&ledgerDomain.Pool{}, &ledgerDomain.BudgetAllocation{}, &ledgerDomain.InvestmentAllocation{},
		&catalogDomain.Department{}, &catalogDomain.Provider{},
		&orderDomain.PurchaseOrder{}, &orderDomain.BudgetLink{}, &orderDomain.InvestmentLink{},
		&orderDomain.Invoice{}, &orderDomain.Comment{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makePool(year int, money string) *ledgerDomain.Pool {
	return &ledgerDomain.Pool{Year: year, Money: decimal.RequireFromString(money)}
}

func TestPoolByYear(t *testing.T) {
	db := openTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	p := makePool(2024, "100000.00")
	if err := repo.CreatePool(ctx, p); err != nil {
		t.Fatalf("CreatePool: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("CreatePool did not set auto-increment ID")
	}

	got, err := repo.PoolByYear(ctx, 2024)
	if err != nil {
		t.Fatalf("PoolByYear: %v", err)
	}
	if got.ID != p.ID || !got.Money.Equal(p.Money) {
		t.Fatalf("unexpected pool: %+v", got)
	}

	if _, err := repo.PoolByYear(ctx, 1999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found for missing year, got %v", err)
	}
}

func TestCreatePool_DuplicateYear(t *testing.T) {
	db := openTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	if err := repo.CreatePool(ctx, makePool(2024, "100.00")); err != nil {
		t.Fatalf("CreatePool: %v", err)
	}
	err := repo.CreatePool(ctx, makePool(2024, "200.00"))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated-key error, got %v", err)
	}
}

func TestSetPoolMoney(t *testing.T) {
	db := openTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	p := makePool(2024, "100.00")
	if err := repo.CreatePool(ctx, p); err != nil {
		t.Fatalf("CreatePool: %v", err)
	}

	affected, err := repo.SetPoolMoney(ctx, p.ID, decimal.RequireFromString("2500.50"))
	if err != nil {
		t.Fatalf("SetPoolMoney: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}
	got, err := repo.PoolByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("PoolByID: %v", err)
	}
	if !got.Money.Equal(decimal.RequireFromString("2500.50")) {
		t.Fatalf("money = %s, want 2500.50", got.Money)
	}

	// missing pool → zero rows, no error
	affected, err = repo.SetPoolMoney(ctx, 9999, decimal.RequireFromString("1.00"))
	if err != nil {
		t.Fatalf("SetPoolMoney missing: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected = %d, want 0", affected)
	}
}

func TestBudgetAllocation_UniquePerPoolAndDept(t *testing.T) {
	db := openTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	a := &ledgerDomain.BudgetAllocation{PoolID: 1, DepartmentID: 5}
	if err := repo.CreateBudget(ctx, a); err != nil {
		t.Fatalf("CreateBudget: %v", err)
	}

	got, err := repo.BudgetByPoolDept(ctx, 1, 5)
	if err != nil {
		t.Fatalf("BudgetByPoolDept: %v", err)
	}
	if got.ID != a.ID {
		t.Fatalf("allocation id = %d, want %d", got.ID, a.ID)
	}

	dup := &ledgerDomain.BudgetAllocation{PoolID: 1, DepartmentID: 5}
	if err := repo.CreateBudget(ctx, dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected duplicated-key error, got %v", err)
	}

	// a different department is fine
	if err := repo.CreateBudget(ctx, &ledgerDomain.BudgetAllocation{PoolID: 1, DepartmentID: 6}); err != nil {
		t.Fatalf("CreateBudget other dept: %v", err)
	}
}

func TestInvestmentAllocation_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	a := &ledgerDomain.InvestmentAllocation{PoolID: 2, DepartmentID: 7, InvestmentCode: "INV-9"}
	if err := repo.CreateInvestment(ctx, a); err != nil {
		t.Fatalf("CreateInvestment: %v", err)
	}

	got, err := repo.InvestmentByPoolDept(ctx, 2, 7)
	if err != nil {
		t.Fatalf("InvestmentByPoolDept: %v", err)
	}
	if got.InvestmentCode != "INV-9" {
		t.Fatalf("code = %q, want INV-9", got.InvestmentCode)
	}

	if _, err := repo.InvestmentByPoolDept(ctx, 2, 8); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found, got %v", err)
	}
}
