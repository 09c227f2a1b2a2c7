package ledger

import (
	"context"
	"errors"
	"fmt"

	"compras-backend/internal/domain/ledger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct{ repo ledger.Repository }

func NewUsecase(r ledger.Repository) *Usecase { return &Usecase{repo: r} }

// PoolByYear resolves the fiscal-year pool an order will be charged to.
func PoolByYear(ctx context.Context, repo ledger.Repository, year int) (*ledger.Pool, error) {
	p, err := repo.PoolByYear(ctx, year)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no ledger pool for year %d: %w", year, ledger.ErrPoolNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ResolveBudget finds or creates the budget allocation for (pool, department).
// It must run inside the caller's transaction. A concurrent creator losing
// the race hits the unique index; the winner's row is re-read.
func ResolveBudget(ctx context.Context, repo ledger.Repository, poolID, deptID uint64) (uint64, error) {
	a, err := repo.BudgetByPoolDept(ctx, poolID, deptID)
	switch {
	case err == nil:
		return a.ID, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return 0, err
	}

	na := &ledger.BudgetAllocation{PoolID: poolID, DepartmentID: deptID}
	if err := repo.CreateBudget(ctx, na); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if a, err2 := repo.BudgetByPoolDept(ctx, poolID, deptID); err2 == nil {
				return a.ID, nil
			}
		}
		return 0, err
	}
	return na.ID, nil
}

// ResolveInvestment is the investment-track counterpart of ResolveBudget and
// requires a non-empty investment code for first-time creation.
func ResolveInvestment(ctx context.Context, repo ledger.Repository, poolID, deptID uint64, code string) (uint64, error) {
	if code == "" {
		return 0, ledger.ErrInvestmentCodeRequired
	}

	a, err := repo.InvestmentByPoolDept(ctx, poolID, deptID)
	switch {
	case err == nil:
		return a.ID, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return 0, err
	}

	na := &ledger.InvestmentAllocation{PoolID: poolID, DepartmentID: deptID, InvestmentCode: code}
	if err := repo.CreateInvestment(ctx, na); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if a, err2 := repo.InvestmentByPoolDept(ctx, poolID, deptID); err2 == nil {
				return a.ID, nil
			}
		}
		return 0, err
	}
	return na.ID, nil
}

// parseMoney rejects non-numeric and negative amounts before anything is
// written. A parse failure is a validation error, never a silent zero.
func parseMoney(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, ledger.ErrInvalidMoney
	}
	return d, nil
}

func (u *Usecase) CreatePool(ctx context.Context, year int, money string) (*ledger.Pool, error) {
	d, err := parseMoney(money)
	if err != nil {
		return nil, err
	}
	p := &ledger.Pool{Year: year, Money: d}
	if err := u.repo.CreatePool(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ledger.ErrPoolExists
		}
		return nil, err
	}
	return p, nil
}

func (u *Usecase) UpdateMoney(ctx context.Context, poolID uint64, money string) error {
	d, err := parseMoney(money)
	if err != nil {
		return err
	}
	affected, err := u.repo.SetPoolMoney(ctx, poolID, d)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ledger.ErrPoolNotFound
	}
	return nil
}

func (u *Usecase) ListPools(ctx context.Context) ([]ledger.Pool, error) {
	return u.repo.ListPools(ctx)
}
