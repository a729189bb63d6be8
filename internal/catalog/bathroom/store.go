package bathroom

import "context"

type Repository interface {
	// Categories
	ListCategories(context context.Context, activeOnly bool) ([]*Category, error)
	GetCategory(context context.Context, id string) (*Category, error)
	CreateCategory(context context.Context, c *Category) error
	UpdateCategory(context context.Context, c *Category) error
	DeleteCategory(context context.Context, id string) error

	// Products
	ListProducts(context context.Context, categoryID string, activeOnly bool) ([]*Product, error)
	GetProduct(context context.Context, id string) (*Product, error)
	CreateProduct(context context.Context, p *Product) error
	UpdateProduct(context context.Context, id string, p *ProductPatch) (*Product, error)
	DeleteProduct(context context.Context, id string) error

	// Installations
	ListInstallations(context context.Context, activeOnly bool) ([]*Installation, error)
	GetInstallation(context context.Context, id string) (*Installation, error)
	CreateInstallation(context context.Context, i *Installation) error
	UpdateInstallation(context context.Context, i *Installation) error
	DeleteInstallation(context context.Context, id string) error
}
