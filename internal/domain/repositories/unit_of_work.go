package repositories

import "context"

// UnitOfWork executes a function within a single transaction scope.
// Repository calls made with the context passed to fn share that
// transaction; any error rolls the whole unit back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
