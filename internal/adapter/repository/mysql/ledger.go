package mysql

import (
	"context"

	ledgerDomain "compras-backend/internal/domain/ledger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) CreatePool(ctx context.Context, p *ledgerDomain.Pool) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *LedgerRepository) PoolByID(ctx context.Context, id uint64) (*ledgerDomain.Pool, error) {
	var out ledgerDomain.Pool
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) PoolByYear(ctx context.Context, year int) (*ledgerDomain.Pool, error) {
	var out ledgerDomain.Pool
	res := r.db.WithContext(ctx).Where("ano = ?", year).First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) ListPools(ctx context.Context) ([]ledgerDomain.Pool, error) {
	var out []ledgerDomain.Pool
	res := r.db.WithContext(ctx).Order("ano DESC").Find(&out)
	return out, res.Error
}

func (r *LedgerRepository) SetPoolMoney(ctx context.Context, id uint64, money decimal.Decimal) (int64, error) {
	res := r.db.WithContext(ctx).Model(&ledgerDomain.Pool{}).
		Where("id = ?", id).
		Update("dinero", money)
	return res.RowsAffected, res.Error
}

func (r *LedgerRepository) BudgetByPoolDept(ctx context.Context, poolID, deptID uint64) (*ledgerDomain.BudgetAllocation, error) {
	var out ledgerDomain.BudgetAllocation
	res := r.db.WithContext(ctx).
		Where("bolsa_id = ? AND departamento_id = ?", poolID, deptID).
		First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) CreateBudget(ctx context.Context, a *ledgerDomain.BudgetAllocation) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LedgerRepository) InvestmentByPoolDept(ctx context.Context, poolID, deptID uint64) (*ledgerDomain.InvestmentAllocation, error) {
	var out ledgerDomain.InvestmentAllocation
	res := r.db.WithContext(ctx).
		Where("bolsa_id = ? AND departamento_id = ?", poolID, deptID).
		First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) CreateInvestment(ctx context.Context, a *ledgerDomain.InvestmentAllocation) error {
	return r.db.WithContext(ctx).Create(a).Error
}
