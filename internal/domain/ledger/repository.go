package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	CreatePool(ctx context.Context, p *Pool) error
	PoolByID(ctx context.Context, id uint64) (*Pool, error)
	PoolByYear(ctx context.Context, year int) (*Pool, error)
	ListPools(ctx context.Context) ([]Pool, error)
	// SetPoolMoney returns the number of affected rows (0 when the pool
	// does not exist).
	SetPoolMoney(ctx context.Context, id uint64, money decimal.Decimal) (int64, error)

	BudgetByPoolDept(ctx context.Context, poolID, deptID uint64) (*BudgetAllocation, error)
	CreateBudget(ctx context.Context, a *BudgetAllocation) error
	InvestmentByPoolDept(ctx context.Context, poolID, deptID uint64) (*InvestmentAllocation, error)
	CreateInvestment(ctx context.Context, a *InvestmentAllocation) error
}
