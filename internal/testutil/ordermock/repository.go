package ordermock

import (
	"context"

	domain "compras-backend/internal/domain/order"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset query fields report record-not-found; unset write fields succeed.
type Repo struct {
	CreateFn           func(ctx context.Context, o *domain.PurchaseOrder) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.PurchaseOrder, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.PurchaseOrder, error)
	UpdateFieldsFn     func(ctx context.Context, o *domain.PurchaseOrder) (int64, error)
	DeleteFn           func(ctx context.Context, id uint64) (int64, error)

	CreateBudgetLinkFn      func(ctx context.Context, l *domain.BudgetLink) error
	CreateInvestmentLinkFn  func(ctx context.Context, l *domain.InvestmentLink) error
	BudgetLinkByOrderFn     func(ctx context.Context, orderID uint64) (*domain.BudgetLink, error)
	InvestmentLinkByOrderFn func(ctx context.Context, orderID uint64) (*domain.InvestmentLink, error)
	SetInvestmentCodeFn     func(ctx context.Context, orderID uint64, code string) (int64, error)
	DeleteBudgetLinkFn      func(ctx context.Context, orderID uint64) (int64, error)
	DeleteInvestmentLinkFn  func(ctx context.Context, orderID uint64) (int64, error)

	CreateInvoiceFn         func(ctx context.Context, f *domain.Invoice) error
	InvoicesByOrderFn       func(ctx context.Context, orderID uint64) ([]domain.Invoice, error)
	DeleteInvoicesByOrderFn func(ctx context.Context, orderID uint64) (int64, error)

	CreateCommentFn         func(ctx context.Context, cm *domain.Comment) error
	CommentByIDFn           func(ctx context.Context, id uint64) (*domain.Comment, error)
	CommentsByOrderFn       func(ctx context.Context, orderID uint64) ([]domain.Comment, error)
	DeleteCommentFn         func(ctx context.Context, id uint64) (int64, error)
	DeleteCommentsByOrderFn func(ctx context.Context, orderID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, o *domain.PurchaseOrder) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.PurchaseOrder, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.PurchaseOrder, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) UpdateFields(ctx context.Context, o *domain.PurchaseOrder) (int64, error) {
	if m.UpdateFieldsFn != nil {
		return m.UpdateFieldsFn(ctx, o)
	}
	return 0, nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return 0, nil
}

func (m *Repo) CreateBudgetLink(ctx context.Context, l *domain.BudgetLink) error {
	if m.CreateBudgetLinkFn != nil {
		return m.CreateBudgetLinkFn(ctx, l)
	}
	return nil
}

func (m *Repo) CreateInvestmentLink(ctx context.Context, l *domain.InvestmentLink) error {
	if m.CreateInvestmentLinkFn != nil {
		return m.CreateInvestmentLinkFn(ctx, l)
	}
	return nil
}

func (m *Repo) BudgetLinkByOrder(ctx context.Context, orderID uint64) (*domain.BudgetLink, error) {
	if m.BudgetLinkByOrderFn != nil {
		return m.BudgetLinkByOrderFn(ctx, orderID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) InvestmentLinkByOrder(ctx context.Context, orderID uint64) (*domain.InvestmentLink, error) {
	if m.InvestmentLinkByOrderFn != nil {
		return m.InvestmentLinkByOrderFn(ctx, orderID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) SetInvestmentCode(ctx context.Context, orderID uint64, code string) (int64, error) {
	if m.SetInvestmentCodeFn != nil {
		return m.SetInvestmentCodeFn(ctx, orderID, code)
	}
	return 0, nil
}

func (m *Repo) DeleteBudgetLink(ctx context.Context, orderID uint64) (int64, error) {
	if m.DeleteBudgetLinkFn != nil {
		return m.DeleteBudgetLinkFn(ctx, orderID)
	}
	return 0, nil
}

func (m *Repo) DeleteInvestmentLink(ctx context.Context, orderID uint64) (int64, error) {
	if m.DeleteInvestmentLinkFn != nil {
		return m.DeleteInvestmentLinkFn(ctx, orderID)
	}
	return 0, nil
}

func (m *Repo) CreateInvoice(ctx context.Context, f *domain.Invoice) error {
	if m.CreateInvoiceFn != nil {
		return m.CreateInvoiceFn(ctx, f)
	}
	return nil
}

func (m *Repo) InvoicesByOrder(ctx context.Context, orderID uint64) ([]domain.Invoice, error) {
	if m.InvoicesByOrderFn != nil {
		return m.InvoicesByOrderFn(ctx, orderID)
	}
	return nil, nil
}

func (m *Repo) DeleteInvoicesByOrder(ctx context.Context, orderID uint64) (int64, error) {
	if m.DeleteInvoicesByOrderFn != nil {
		return m.DeleteInvoicesByOrderFn(ctx, orderID)
	}
	return 0, nil
}

func (m *Repo) CreateComment(ctx context.Context, cm *domain.Comment) error {
	if m.CreateCommentFn != nil {
		return m.CreateCommentFn(ctx, cm)
	}
	return nil
}

func (m *Repo) CommentByID(ctx context.Context, id uint64) (*domain.Comment, error) {
	if m.CommentByIDFn != nil {
		return m.CommentByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) CommentsByOrder(ctx context.Context, orderID uint64) ([]domain.Comment, error) {
	if m.CommentsByOrderFn != nil {
		return m.CommentsByOrderFn(ctx, orderID)
	}
	return nil, nil
}

func (m *Repo) DeleteComment(ctx context.Context, id uint64) (int64, error) {
	if m.DeleteCommentFn != nil {
		return m.DeleteCommentFn(ctx, id)
	}
	return 0, nil
}

func (m *Repo) DeleteCommentsByOrder(ctx context.Context, orderID uint64) (int64, error) {
	if m.DeleteCommentsByOrderFn != nil {
		return m.DeleteCommentsByOrderFn(ctx, orderID)
	}
	return 0, nil
}
