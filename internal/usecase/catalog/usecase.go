package catalog

import (
	"context"
	"errors"

	"compras-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

type Usecase struct{ repo catalog.Repository }

func NewUsecase(r catalog.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) CreateDepartment(ctx context.Context, name string) (*catalog.Department, error) {
	d := &catalog.Department{Name: name}
	if err := u.repo.CreateDepartment(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (u *Usecase) RenameDepartment(ctx context.Context, id uint64, name string) error {
	affected, err := u.repo.RenameDepartment(ctx, id, name)
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrDepartmentNotFound
	}
	return nil
}

// DeleteDepartment is destructive: allocations and provider associations
// referencing the department are left in place, matching the original
// application's behavior.
func (u *Usecase) DeleteDepartment(ctx context.Context, id uint64) error {
	affected, err := u.repo.DeleteDepartment(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrDepartmentNotFound
	}
	return nil
}

func (u *Usecase) ListDepartments(ctx context.Context) ([]catalog.Department, error) {
	return u.repo.ListDepartments(ctx)
}

func (u *Usecase) CreateProvider(ctx context.Context, p *catalog.Provider, departmentIDs []uint64) error {
	return u.repo.CreateProvider(ctx, p, departmentIDs)
}

func (u *Usecase) UpdateProvider(ctx context.Context, p *catalog.Provider, departmentIDs []uint64) error {
	affected, err := u.repo.UpdateProvider(ctx, p, departmentIDs)
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrProviderNotFound
	}
	return nil
}

func (u *Usecase) DeleteProvider(ctx context.Context, id uint64) error {
	affected, err := u.repo.DeleteProvider(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrProviderNotFound
	}
	return nil
}

func (u *Usecase) ListProviders(ctx context.Context) ([]catalog.Provider, error) {
	return u.repo.ListProviders(ctx)
}

func (u *Usecase) GetProvider(ctx context.Context, id uint64) (*catalog.Provider, error) {
	p, err := u.repo.ProviderByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrProviderNotFound
	}
	return p, err
}
