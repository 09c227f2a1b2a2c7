package uow

import (
	"context"

	"compras-backend/internal/domain/catalog"
	"compras-backend/internal/domain/ledger"
	"compras-backend/internal/domain/order"
)

type Repos struct {
	Ledgers ledger.Repository
	Orders  order.Repository
	Catalog catalog.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the order row first, then pass it in
	WithinOrderTx(ctx context.Context, orderID uint64, fn func(r Repos, o *order.PurchaseOrder) error) error
}
