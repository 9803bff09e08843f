package core

import "context"

type GroceryRepository interface {
	Insert(ctx context.Context, p *GroceryProduct) error
	List(ctx context.Context) ([]GroceryProduct, error)
	ListBySeller(ctx context.Context, seller string) ([]GroceryProduct, error)
	GetByID(ctx context.Context, id string) (*GroceryProduct, error)
	Update(ctx context.Context, p *GroceryProduct) error
	Delete(ctx context.Context, id string) error
}

type OtherRepository interface {
	Insert(ctx context.Context, p *OtherProduct) error
	List(ctx context.Context) ([]OtherProduct, error)
	ListBySeller(ctx context.Context, seller string) ([]OtherProduct, error)
	GetByID(ctx context.Context, id string) (*OtherProduct, error)
	Update(ctx context.Context, p *OtherProduct) error
	Delete(ctx context.Context, id string) error
}
