package degree

import "context"

// Repository defines persistence for the degree catalog.
type Repository interface {
	// List returns every degree ordered by name.
	List(ctx context.Context) ([]*Degree, error)
	// FindBySlug returns a NOT_FOUND platform error for unknown slugs.
	FindBySlug(ctx context.Context, slug string) (*Degree, error)
	// SearchByKeywords returns up to limit degrees whose name or about text
	// contains any keyword, case-insensitively, in insertion order.
	SearchByKeywords(ctx context.Context, keywords []string, limit int) ([]*Degree, error)
	// Upsert creates or replaces the degree identified by its slug.
	Upsert(ctx context.Context, d *Degree) error
}

// Cache stores catalog reads. Implementations must be safe for concurrent use.
type Cache interface {
	GetList(ctx context.Context) ([]*Degree, bool)
	SetList(ctx context.Context, degrees []*Degree)
	GetBySlug(ctx context.Context, slug string) (*Degree, bool)
	SetBySlug(ctx context.Context, d *Degree)
	Invalidate(ctx context.Context)
}
