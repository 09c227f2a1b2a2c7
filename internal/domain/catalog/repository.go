package catalog

import "context"

type Repository interface {
	CreateDepartment(ctx context.Context, d *Department) error
	RenameDepartment(ctx context.Context, id uint64, name string) (int64, error)
	DeleteDepartment(ctx context.Context, id uint64) (int64, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	DepartmentByID(ctx context.Context, id uint64) (*Department, error)

	CreateProvider(ctx context.Context, p *Provider, departmentIDs []uint64) error
	UpdateProvider(ctx context.Context, p *Provider, departmentIDs []uint64) (int64, error)
	DeleteProvider(ctx context.Context, id uint64) (int64, error)
	ListProviders(ctx context.Context) ([]Provider, error)
	ProviderByID(ctx context.Context, id uint64) (*Provider, error)
}
