package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("purchase order not found")
	ErrInvalidTrack     = errors.New("invalid funding track")
	ErrTrackImmutable   = errors.New("order cannot move between funding tracks")
	ErrProviderRequired = errors.New("a valid provider is required")
	ErrInvalidAmount    = errors.New("order amount must be a non-negative number")
	ErrCommentNotFound  = errors.New("order comment not found")
	ErrNotCommentAuthor = errors.New("only the author or an admin may remove a comment")
)

// Track is the funding path of an order: budget ("presupuesto") or
// investment ("inversion"). Exactly one link row of the matching kind
// references a committed order.
type Track string

const (
	TrackBudget     Track = "presupuesto"
	TrackInvestment Track = "inversion"
)

// ParseTrack maps a wire value to a Track; anything else is ErrInvalidTrack.
func ParseTrack(s string) (Track, error) {
	switch Track(s) {
	case TrackBudget:
		return TrackBudget, nil
	case TrackInvestment:
		return TrackInvestment, nil
	}
	return "", ErrInvalidTrack
}

type PurchaseOrder struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"id"`
	Code          string          `gorm:"size:64;column:codigo;not null" json:"codigo"`
	Quantity      int             `gorm:"column:cantidad;not null" json:"cantidad"`
	Inventoriable bool            `gorm:"column:inventariable;not null" json:"inventariable"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);column:importe;not null" json:"importe"`
	Date          time.Time       `gorm:"type:date;column:fecha;not null" json:"fecha"`
	Description   string          `gorm:"type:text;column:observacion" json:"observacion"`
	ProviderID    uint64          `gorm:"column:proveedor_id;not null;index:idx_ordenes_proveedor" json:"proveedor_id"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PurchaseOrder) TableName() string { return "ordenes_compra" }

// BudgetLink ties an order to the budget allocation that funded it.
type BudgetLink struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"id"`
	OrderID      uint64 `gorm:"column:orden_id;not null;uniqueIndex:ux_compra_presupuesto_orden" json:"orden_id"`
	AllocationID uint64 `gorm:"column:presupuesto_id;not null;index" json:"presupuesto_id"`
}

func (BudgetLink) TableName() string { return "compra_presupuesto" }

// InvestmentLink ties an order to the investment allocation that funded it
// and carries the order's own investment code.
type InvestmentLink struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"id"`
	OrderID        uint64 `gorm:"column:orden_id;not null;uniqueIndex:ux_compra_inversion_orden" json:"orden_id"`
	AllocationID   uint64 `gorm:"column:inversion_id;not null;index" json:"inversion_id"`
	InvestmentCode string `gorm:"size:64;column:num_inversion;not null" json:"num_inversion"`
}

func (InvestmentLink) TableName() string { return "compra_inversion" }

type Invoice struct {
	ID      uint64          `gorm:"primaryKey;column:id" json:"id"`
	OrderID uint64          `gorm:"column:orden_id;not null;index:idx_facturas_orden" json:"orden_id"`
	Number  string          `gorm:"size:64;column:numero" json:"numero"`
	Amount  decimal.Decimal `gorm:"type:decimal(18,2);column:importe" json:"importe"`
	Date    time.Time       `gorm:"type:date;column:fecha" json:"fecha"`
}

func (Invoice) TableName() string { return "facturas" }

// Comment is author-stamped; the order itself is not.
type Comment struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	OrderID   uint64    `gorm:"column:orden_id;not null;index:idx_comentarios_orden" json:"orden_id"`
	UserID    uint64    `gorm:"column:usuario_id;not null" json:"usuario_id"`
	Text      string    `gorm:"type:text;column:comentario;not null" json:"comentario"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string { return "comentarios_orden" }
