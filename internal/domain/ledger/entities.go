package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrPoolNotFound           = errors.New("ledger pool not found")
	ErrPoolExists             = errors.New("ledger pool already exists for that year")
	ErrInvalidMoney           = errors.New("invalid money amount")
	ErrInvestmentCodeRequired = errors.New("investment code is required")
)

// Pool is the fiscal-year money pool ("bolsa") that backs every department
// allocation for that year. One pool per year.
type Pool struct {
	ID    uint64          `gorm:"primaryKey;column:id" json:"id"`
	Money decimal.Decimal `gorm:"type:decimal(18,2);column:dinero;not null" json:"dinero"`
	Year  int             `gorm:"column:ano;not null;uniqueIndex:ux_bolsas_ano" json:"ano"`
}

func (Pool) TableName() string { return "bolsas" }

// BudgetAllocation is a department's budget-track claim on a pool, lazily
// created on the first order for that (pool, department) pair.
// The composite unique index makes find-or-create race-safe.
type BudgetAllocation struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"id"`
	PoolID       uint64 `gorm:"column:bolsa_id;not null;uniqueIndex:ux_presupuestos_bolsa_depto" json:"bolsa_id"`
	DepartmentID uint64 `gorm:"column:departamento_id;not null;uniqueIndex:ux_presupuestos_bolsa_depto" json:"departamento_id"`
}

func (BudgetAllocation) TableName() string { return "presupuestos" }

// InvestmentAllocation is the investment-track counterpart of
// BudgetAllocation and carries the investment code it was opened with.
type InvestmentAllocation struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"id"`
	PoolID         uint64 `gorm:"column:bolsa_id;not null;uniqueIndex:ux_inversiones_bolsa_depto" json:"bolsa_id"`
	DepartmentID   uint64 `gorm:"column:departamento_id;not null;uniqueIndex:ux_inversiones_bolsa_depto" json:"departamento_id"`
	InvestmentCode string `gorm:"size:64;column:codigo_inversion" json:"codigo_inversion"`
}

func (InvestmentAllocation) TableName() string { return "inversiones" }
