package icecream

import (
	"context"
)

// Repository is the store gateway used by the handlers. Every call is one round trip.
type Repository interface {
	Insert(ctx context.Context, flavor string, quantity int) (int, error)
	// FetchOne returns ErrNotFound when no row has the given id.
	FetchOne(ctx context.Context, id int) (*IceCream, error)
	FetchAll(ctx context.Context) ([]IceCream, error)
	Update(ctx context.Context, id int, flavor string, quantity int) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}
