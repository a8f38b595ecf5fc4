package lead

import "context"

// Repository persists leads.
type Repository interface {
	Create(ctx context.Context, l *Lead) error
	// List returns leads newest first.
	List(ctx context.Context) ([]*Lead, error)
}
