package order

import (
	"time"

	"compras-backend/internal/domain/order"

	"github.com/shopspring/decimal"
)

type CreateOrderInput struct {
	Year          int
	DepartmentID  uint64
	Code          string
	ProviderID    uint64
	Date          time.Time
	Quantity      int
	Amount        decimal.Decimal
	Inventoriable bool
	Description   string
	// Non-empty routes the order to the investment track.
	InvestmentCode string
	AuthorUserID   uint64
	Comments       []string
}

// Track derives the funding path from the input's investment code.
func (in CreateOrderInput) Track() order.Track {
	if in.InvestmentCode != "" {
		return order.TrackInvestment
	}
	return order.TrackBudget
}

type CreateResult struct {
	OrderID uint64      `json:"id"`
	Track   order.Track `json:"track"`
	Message string      `json:"message"`
}

type UpdateOrderInput struct {
	ID             uint64
	Code           string
	InvestmentCode string
	Description    string
	ProviderID     uint64
	Quantity       int
	Date           time.Time
	Inventoriable  bool
	Amount         decimal.Decimal
}

type OrderDTO struct {
	ID            uint64          `json:"id"`
	Code          string          `json:"codigo"`
	Quantity      int             `json:"cantidad"`
	Inventoriable bool            `json:"inventariable"`
	Amount        decimal.Decimal `json:"importe"`
	Date          time.Time       `json:"fecha"`
	Description   string          `json:"observacion"`
	ProviderID    uint64          `json:"proveedor_id"`
	Track         order.Track     `json:"track"`
	// Set for investment-track orders only.
	InvestmentCode string          `json:"num_inversion,omitempty"`
	Comments       []order.Comment `json:"comentarios"`
}
