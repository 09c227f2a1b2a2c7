package order

import (
	"context"
	"errors"
	"strings"

	"compras-backend/internal/domain/order"
	"compras-backend/internal/domain/uow"
	ledgerUC "compras-backend/internal/usecase/ledger"

	"gorm.io/gorm"
)

// Usecase is the order mutation engine. Every mutation runs inside one
// transaction: either the whole entity graph changes, or none of it does.
type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Create inserts the order, its single ledger-link row and the optional
// comment batch atomically. The pool is resolved by fiscal year; the
// allocation for (pool, department) is created lazily on first use.
func (u *Usecase) Create(ctx context.Context, in CreateOrderInput) (*CreateResult, error) {
	if in.ProviderID == 0 {
		return nil, order.ErrProviderRequired
	}
	if in.Amount.IsNegative() {
		return nil, order.ErrInvalidAmount
	}

	var out *CreateResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		pool, err := ledgerUC.PoolByYear(ctx, r.Ledgers, in.Year)
		if err != nil {
			return err
		}

		o := &order.PurchaseOrder{
			Code:          in.Code,
			Quantity:      in.Quantity,
			Inventoriable: in.Inventoriable,
			Amount:        in.Amount,
			Date:          in.Date,
			Description:   in.Description,
			ProviderID:    in.ProviderID,
		}
		if err := r.Orders.Create(ctx, o); err != nil {
			return err
		}

		var message string
		switch in.Track() {
		case order.TrackInvestment:
			allocID, err := ledgerUC.ResolveInvestment(ctx, r.Ledgers, pool.ID, in.DepartmentID, in.InvestmentCode)
			if err != nil {
				return err
			}
			link := &order.InvestmentLink{OrderID: o.ID, AllocationID: allocID, InvestmentCode: in.InvestmentCode}
			if err := r.Orders.CreateInvestmentLink(ctx, link); err != nil {
				return err
			}
			message = "investment order created"
		default:
			allocID, err := ledgerUC.ResolveBudget(ctx, r.Ledgers, pool.ID, in.DepartmentID)
			if err != nil {
				return err
			}
			link := &order.BudgetLink{OrderID: o.ID, AllocationID: allocID}
			if err := r.Orders.CreateBudgetLink(ctx, link); err != nil {
				return err
			}
			message = "budget order created"
		}

		for _, text := range in.Comments {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			cm := &order.Comment{OrderID: o.ID, UserID: in.AuthorUserID, Text: text}
			if err := r.Orders.CreateComment(ctx, cm); err != nil {
				return err
			}
		}

		out = &CreateResult{OrderID: o.ID, Track: in.Track(), Message: message}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// openErr maps record-not-found from the locked order open to the domain
// error.
func openErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order.ErrNotFound
	}
	return err
}

// Update rewrites the mutable order fields in place. A supplied investment
// code updates the code on an existing investment link; it never creates a
// link or moves the order between tracks. The order row is locked for the
// whole transaction so the link check and the code write see the same state.
func (u *Usecase) Update(ctx context.Context, in UpdateOrderInput) error {
	if in.ProviderID == 0 {
		return order.ErrProviderRequired
	}
	if in.Amount.IsNegative() {
		return order.ErrInvalidAmount
	}

	return openErr(u.uow.WithinOrderTx(ctx, in.ID, func(r uow.Repos, _ *order.PurchaseOrder) error {
		o := &order.PurchaseOrder{
			ID:            in.ID,
			Code:          in.Code,
			Quantity:      in.Quantity,
			Inventoriable: in.Inventoriable,
			Amount:        in.Amount,
			Date:          in.Date,
			Description:   in.Description,
			ProviderID:    in.ProviderID,
		}
		if _, err := r.Orders.UpdateFields(ctx, o); err != nil {
			return err
		}

		if in.InvestmentCode == "" {
			return nil
		}
		if _, err := r.Orders.InvestmentLinkByOrder(ctx, in.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// budget-track order: refuse the implicit migration
				return order.ErrTrackImmutable
			}
			return err
		}
		_, err := r.Orders.SetInvestmentCode(ctx, in.ID, in.InvestmentCode)
		return err
	}))
}

// Delete removes the order and its children in dependency order: invoices,
// comments, link rows, then the order itself. The row lock taken on open
// makes concurrent deletes of the same order serialize; the loser sees
// ErrNotFound instead of a zero-row delete. Both link tables are cleared
// since the order carries exactly one link row and a mismatched type in the
// request must not leave it orphaned.
func (u *Usecase) Delete(ctx context.Context, orderID uint64, track order.Track) (int64, error) {
	if track != order.TrackBudget && track != order.TrackInvestment {
		return 0, order.ErrInvalidTrack
	}

	var affected int64
	err := u.uow.WithinOrderTx(ctx, orderID, func(r uow.Repos, _ *order.PurchaseOrder) error {
		if _, err := r.Orders.DeleteInvoicesByOrder(ctx, orderID); err != nil {
			return err
		}
		if _, err := r.Orders.DeleteCommentsByOrder(ctx, orderID); err != nil {
			return err
		}
		if _, err := r.Orders.DeleteBudgetLink(ctx, orderID); err != nil {
			return err
		}
		if _, err := r.Orders.DeleteInvestmentLink(ctx, orderID); err != nil {
			return err
		}
		n, err := r.Orders.Delete(ctx, orderID)
		if err != nil {
			return err
		}
		affected = n
		return nil
	})
	if err != nil {
		return 0, openErr(err)
	}
	return affected, nil
}

// Get returns the order with its funding track and comments.
func (u *Usecase) Get(ctx context.Context, orderID uint64) (*OrderDTO, error) {
	var out *OrderDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := r.Orders.GetByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return order.ErrNotFound
			}
			return err
		}
		dto := &OrderDTO{
			ID:            o.ID,
			Code:          o.Code,
			Quantity:      o.Quantity,
			Inventoriable: o.Inventoriable,
			Amount:        o.Amount,
			Date:          o.Date,
			Description:   o.Description,
			ProviderID:    o.ProviderID,
			Track:         order.TrackBudget,
		}
		if link, err := r.Orders.InvestmentLinkByOrder(ctx, orderID); err == nil {
			dto.Track = order.TrackInvestment
			dto.InvestmentCode = link.InvestmentCode
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		cms, err := r.Orders.CommentsByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		dto.Comments = cms
		out = dto
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
