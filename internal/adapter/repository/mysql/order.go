package mysql

import (
	"context"

	orderDomain "compras-backend/internal/domain/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{db: db} }

func (r *OrderRepository) Create(ctx context.Context, o *orderDomain.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint64) (*orderDomain.PurchaseOrder, error) {
	var out orderDomain.PurchaseOrder
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *OrderRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*orderDomain.PurchaseOrder, error) {
	q := r.db.WithContext(ctx)
	// sqlite (used in tests) has no FOR UPDATE; its writes lock the whole DB anyway
	if r.db.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out orderDomain.PurchaseOrder
	res := q.Where("id = ?", id).First(&out)
	return &out, res.Error
}

// UpdateFields writes every mutable column, including zero values, so a
// cleared description or quantity sticks.
func (r *OrderRepository) UpdateFields(ctx context.Context, o *orderDomain.PurchaseOrder) (int64, error) {
	res := r.db.WithContext(ctx).Model(&orderDomain.PurchaseOrder{}).
		Where("id = ?", o.ID).
		Updates(map[string]any{
			"codigo":        o.Code,
			"cantidad":      o.Quantity,
			"inventariable": o.Inventoriable,
			"importe":       o.Amount,
			"fecha":         o.Date,
			"observacion":   o.Description,
			"proveedor_id":  o.ProviderID,
		})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&orderDomain.PurchaseOrder{})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) CreateBudgetLink(ctx context.Context, l *orderDomain.BudgetLink) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *OrderRepository) CreateInvestmentLink(ctx context.Context, l *orderDomain.InvestmentLink) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *OrderRepository) BudgetLinkByOrder(ctx context.Context, orderID uint64) (*orderDomain.BudgetLink, error) {
	var out orderDomain.BudgetLink
	res := r.db.WithContext(ctx).Where("orden_id = ?", orderID).First(&out)
	return &out, res.Error
}

func (r *OrderRepository) InvestmentLinkByOrder(ctx context.Context, orderID uint64) (*orderDomain.InvestmentLink, error) {
	var out orderDomain.InvestmentLink
	res := r.db.WithContext(ctx).Where("orden_id = ?", orderID).First(&out)
	return &out, res.Error
}

func (r *OrderRepository) SetInvestmentCode(ctx context.Context, orderID uint64, code string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&orderDomain.InvestmentLink{}).
		Where("orden_id = ?", orderID).
		Update("num_inversion", code)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeleteBudgetLink(ctx context.Context, orderID uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("orden_id = ?", orderID).Delete(&orderDomain.BudgetLink{})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeleteInvestmentLink(ctx context.Context, orderID uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("orden_id = ?", orderID).Delete(&orderDomain.InvestmentLink{})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) CreateInvoice(ctx context.Context, f *orderDomain.Invoice) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *OrderRepository) InvoicesByOrder(ctx context.Context, orderID uint64) ([]orderDomain.Invoice, error) {
	var out []orderDomain.Invoice
	res := r.db.WithContext(ctx).Where("orden_id = ?", orderID).Find(&out)
	return out, res.Error
}

func (r *OrderRepository) DeleteInvoicesByOrder(ctx context.Context, orderID uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("orden_id = ?", orderID).Delete(&orderDomain.Invoice{})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) CreateComment(ctx context.Context, cm *orderDomain.Comment) error {
	return r.db.WithContext(ctx).Create(cm).Error
}

func (r *OrderRepository) CommentByID(ctx context.Context, id uint64) (*orderDomain.Comment, error) {
	var out orderDomain.Comment
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *OrderRepository) CommentsByOrder(ctx context.Context, orderID uint64) ([]orderDomain.Comment, error) {
	var out []orderDomain.Comment
	res := r.db.WithContext(ctx).Where("orden_id = ?", orderID).Order("created_at ASC, id ASC").Find(&out)
	return out, res.Error
}

func (r *OrderRepository) DeleteComment(ctx context.Context, id uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&orderDomain.Comment{})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeleteCommentsByOrder(ctx context.Context, orderID uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("orden_id = ?", orderID).Delete(&orderDomain.Comment{})
	return res.RowsAffected, res.Error
}
