package update

import "context"

// Repository persists updates.
type Repository interface {
	Create(ctx context.Context, u *Update) error
	// List returns updates newest first.
	List(ctx context.Context) ([]*Update, error)
	// Delete returns a NOT_FOUND platform error when id does not exist.
	Delete(ctx context.Context, id string) error
}
