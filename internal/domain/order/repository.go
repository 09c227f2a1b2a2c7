package order

import "context"

type Repository interface {
	Create(ctx context.Context, o *PurchaseOrder) error
	GetByID(ctx context.Context, id uint64) (*PurchaseOrder, error)
	// GetByIDForUpdate locks the order row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*PurchaseOrder, error)
	// UpdateFields writes the mutable columns in place and reports how many
	// rows matched.
	UpdateFields(ctx context.Context, o *PurchaseOrder) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)

	CreateBudgetLink(ctx context.Context, l *BudgetLink) error
	CreateInvestmentLink(ctx context.Context, l *InvestmentLink) error
	BudgetLinkByOrder(ctx context.Context, orderID uint64) (*BudgetLink, error)
	InvestmentLinkByOrder(ctx context.Context, orderID uint64) (*InvestmentLink, error)
	SetInvestmentCode(ctx context.Context, orderID uint64, code string) (int64, error)
	DeleteBudgetLink(ctx context.Context, orderID uint64) (int64, error)
	DeleteInvestmentLink(ctx context.Context, orderID uint64) (int64, error)

	CreateInvoice(ctx context.Context, f *Invoice) error
	InvoicesByOrder(ctx context.Context, orderID uint64) ([]Invoice, error)
	DeleteInvoicesByOrder(ctx context.Context, orderID uint64) (int64, error)

	CreateComment(ctx context.Context, cm *Comment) error
	CommentByID(ctx context.Context, id uint64) (*Comment, error)
	CommentsByOrder(ctx context.Context, orderID uint64) ([]Comment, error)
	DeleteComment(ctx context.Context, id uint64) (int64, error)
	DeleteCommentsByOrder(ctx context.Context, orderID uint64) (int64, error)
}
