package ledgermock

import (
	"context"

	domain "compras-backend/internal/domain/ledger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset query fields report record-not-found; unset write fields succeed.
type Repo struct {
	CreatePoolFn   func(ctx context.Context, p *domain.Pool) error
	PoolByIDFn     func(ctx context.Context, id uint64) (*domain.Pool, error)
	PoolByYearFn   func(ctx context.Context, year int) (*domain.Pool, error)
	ListPoolsFn    func(ctx context.Context) ([]domain.Pool, error)
	SetPoolMoneyFn func(ctx context.Context, id uint64, money decimal.Decimal) (int64, error)

	BudgetByPoolDeptFn     func(ctx context.Context, poolID, deptID uint64) (*domain.BudgetAllocation, error)
	CreateBudgetFn         func(ctx context.Context, a *domain.BudgetAllocation) error
	InvestmentByPoolDeptFn func(ctx context.Context, poolID, deptID uint64) (*domain.InvestmentAllocation, error)
	CreateInvestmentFn     func(ctx context.Context, a *domain.InvestmentAllocation) error
}

func (m *Repo) CreatePool(ctx context.Context, p *domain.Pool) error {
	if m.CreatePoolFn != nil {
		return m.CreatePoolFn(ctx, p)
	}
	return nil
}

func (m *Repo) PoolByID(ctx context.Context, id uint64) (*domain.Pool, error) {
	if m.PoolByIDFn != nil {
		return m.PoolByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) PoolByYear(ctx context.Context, year int) (*domain.Pool, error) {
	if m.PoolByYearFn != nil {
		return m.PoolByYearFn(ctx, year)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListPools(ctx context.Context) ([]domain.Pool, error) {
	if m.ListPoolsFn != nil {
		return m.ListPoolsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) SetPoolMoney(ctx context.Context, id uint64, money decimal.Decimal) (int64, error) {
	if m.SetPoolMoneyFn != nil {
		return m.SetPoolMoneyFn(ctx, id, money)
	}
	return 0, nil
}

func (m *Repo) BudgetByPoolDept(ctx context.Context, poolID, deptID uint64) (*domain.BudgetAllocation, error) {
	if m.BudgetByPoolDeptFn != nil {
		return m.BudgetByPoolDeptFn(ctx, poolID, deptID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) CreateBudget(ctx context.Context, a *domain.BudgetAllocation) error {
	if m.CreateBudgetFn != nil {
		return m.CreateBudgetFn(ctx, a)
	}
	return nil
}

func (m *Repo) InvestmentByPoolDept(ctx context.Context, poolID, deptID uint64) (*domain.InvestmentAllocation, error) {
	if m.InvestmentByPoolDeptFn != nil {
		return m.InvestmentByPoolDeptFn(ctx, poolID, deptID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) CreateInvestment(ctx context.Context, a *domain.InvestmentAllocation) error {
	if m.CreateInvestmentFn != nil {
		return m.CreateInvestmentFn(ctx, a)
	}
	return nil
}
