package mysql

import (
	"context"

	catalogDomain "compras-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

type CatalogRepository struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{db: db} }

func (r *CatalogRepository) CreateDepartment(ctx context.Context, d *catalogDomain.Department) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *CatalogRepository) RenameDepartment(ctx context.Context, id uint64, name string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&catalogDomain.Department{}).
		Where("id = ?", id).
		Update("nombre", name)
	return res.RowsAffected, res.Error
}

func (r *CatalogRepository) DeleteDepartment(ctx context.Context, id uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&catalogDomain.Department{})
	return res.RowsAffected, res.Error
}

func (r *CatalogRepository) ListDepartments(ctx context.Context) ([]catalogDomain.Department, error) {
	var out []catalogDomain.Department
	res := r.db.WithContext(ctx).Order("nombre ASC").Find(&out)
	return out, res.Error
}

func (r *CatalogRepository) DepartmentByID(ctx context.Context, id uint64) (*catalogDomain.Department, error) {
	var out catalogDomain.Department
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *CatalogRepository) CreateProvider(ctx context.Context, p *catalogDomain.Provider, departmentIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return r.replaceDepartments(tx, p, departmentIDs)
	})
}

func (r *CatalogRepository) UpdateProvider(ctx context.Context, p *catalogDomain.Provider, departmentIDs []uint64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&catalogDomain.Provider{}).
			Where("id = ?", p.ID).
			Updates(map[string]any{
				"nombre":    p.Name,
				"cif":       p.CIF,
				"direccion": p.Address,
				"localidad": p.City,
				"provincia": p.Province,
				"telefono":  p.Phone,
				"email":     p.Email,
			})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		return r.replaceDepartments(tx, p, departmentIDs)
	})
	return affected, err
}

func (r *CatalogRepository) replaceDepartments(tx *gorm.DB, p *catalogDomain.Provider, departmentIDs []uint64) error {
	if departmentIDs == nil {
		return nil
	}
	depts := make([]catalogDomain.Department, 0, len(departmentIDs))
	for _, id := range departmentIDs {
		depts = append(depts, catalogDomain.Department{ID: id})
	}
	return tx.Model(p).Association("Departments").Replace(depts)
}

func (r *CatalogRepository) DeleteProvider(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p := catalogDomain.Provider{ID: id}
		if err := tx.Model(&p).Association("Departments").Clear(); err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&catalogDomain.Provider{})
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

func (r *CatalogRepository) ListProviders(ctx context.Context) ([]catalogDomain.Provider, error) {
	var out []catalogDomain.Provider
	res := r.db.WithContext(ctx).Preload("Departments").Order("nombre ASC").Find(&out)
	return out, res.Error
}

func (r *CatalogRepository) ProviderByID(ctx context.Context, id uint64) (*catalogDomain.Provider, error) {
	var out catalogDomain.Provider
	res := r.db.WithContext(ctx).Preload("Departments").Where("id = ?", id).First(&out)
	return &out, res.Error
}
