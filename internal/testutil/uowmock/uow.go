package uowmock

import (
	"context"
	"errors"

	"compras-backend/internal/domain/order"
	"compras-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinOrderTxFn func(ctx context.Context, orderID uint64, fn func(r uow.Repos, o *order.PurchaseOrder) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW that runs callbacks against the given repos with
// no real transaction underneath. WithinOrderTx mirrors the real
// implementation: it opens the order through GetByIDForUpdate before the
// callback runs.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinOrderTxFn: func(ctx context.Context, orderID uint64, fn func(r uow.Repos, o *order.PurchaseOrder) error) error {
			o, err := r.Orders.GetByIDForUpdate(ctx, orderID)
			if err != nil {
				return err
			}
			return fn(r, o)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinOrderTx(ctx context.Context, orderID uint64, fn func(r uow.Repos, o *order.PurchaseOrder) error) error {
	if m.WithinOrderTxFn != nil {
		return m.WithinOrderTxFn(ctx, orderID, fn)
	}
	return errUnimplemented
}
