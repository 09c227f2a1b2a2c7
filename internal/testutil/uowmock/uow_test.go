package uowmock

import (
	"context"
	"errors"
	"testing"

	"compras-backend/internal/domain/order"
	"compras-backend/internal/domain/uow"
	"compras-backend/internal/testutil/ledgermock"
	"compras-backend/internal/testutil/ordermock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	ledgers := &ledgermock.Repo{}
	orders := &ordermock.Repo{}
	repos := uow.Repos{Ledgers: ledgers, Orders: orders}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			if fn == nil {
				t.Fatalf("WithinTx: fn is nil")
			}
			// simulate transaction body
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Ledgers != ledgers || r.Orders != orders {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_WithinTx_PropagatesError(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("boom")

	m := &UoW{
		WithinTxFn: func(context.Context, func(uow.Repos) error) error {
			return sentinel
		},
	}
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, sentinel) {
		t.Fatalf("WithinTx: want %v, got %v", sentinel, err)
	}
}

func TestUoW_Default_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := &UoW{} // no funcs set
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinOrderTx(ctx, 1, func(uow.Repos, *order.PurchaseOrder) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinOrderTx default: want errUnimplemented, got %v", err)
	}
}

func TestUoW_WithinOrderTx_Happy(t *testing.T) {
	ctx := context.Background()

	orders := &ordermock.Repo{}
	repos := uow.Repos{Orders: orders}
	lock := &order.PurchaseOrder{ID: 7, Code: "OC-7"}

	innerCalled := false
	m := &UoW{
		WithinOrderTxFn: func(gotCtx context.Context, orderID uint64, fn func(r uow.Repos, o *order.PurchaseOrder) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinOrderTx: ctx mismatch")
			}
			if orderID != 7 {
				t.Fatalf("WithinOrderTx: orderID mismatch, got %d", orderID)
			}
			return fn(repos, lock)
		},
	}

	err := m.WithinOrderTx(ctx, 7, func(r uow.Repos, o *order.PurchaseOrder) error {
		innerCalled = true
		if r.Orders != orders {
			t.Fatalf("WithinOrderTx: repos not forwarded")
		}
		if o != lock || o.Code != "OC-7" {
			t.Fatalf("WithinOrderTx: order not forwarded correctly: %+v", o)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinOrderTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinOrderTx: inner fn not called")
	}
}

func TestUoW_Passthrough_And_Reset(t *testing.T) {
	ctx := context.Background()
	orders := &ordermock.Repo{}

	m := Passthrough(uow.Repos{Orders: orders})
	err := m.WithinTx(ctx, func(r uow.Repos) error {
		if r.Orders != orders {
			t.Fatalf("Passthrough: repos not forwarded")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Passthrough: unexpected err: %v", err)
	}

	// WithinOrderTx opens through the locking read like the real UoW
	locked := &order.PurchaseOrder{ID: 9, Code: "OC-9"}
	orders.GetByIDForUpdateFn = func(ctx context.Context, id uint64) (*order.PurchaseOrder, error) {
		if id != 9 {
			t.Fatalf("Passthrough: locked read got id %d, want 9", id)
		}
		return locked, nil
	}
	err = m.WithinOrderTx(ctx, 9, func(r uow.Repos, o *order.PurchaseOrder) error {
		if o != locked {
			t.Fatalf("Passthrough: locked order not forwarded: %+v", o)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Passthrough WithinOrderTx: unexpected err: %v", err)
	}

	// a failed locked read short-circuits the callback
	orders.GetByIDForUpdateFn = nil // default reports record-not-found
	err = m.WithinOrderTx(ctx, 9, func(uow.Repos, *order.PurchaseOrder) error {
		t.Fatal("callback must not run when the locked read fails")
		return nil
	})
	if err == nil {
		t.Fatalf("Passthrough WithinOrderTx: expected error from failed open")
	}

	// reset clears funcs
	m.Reset()
	if m.WithinTxFn != nil || m.WithinOrderTxFn != nil {
		t.Fatalf("Reset should clear function fields")
	}
}
