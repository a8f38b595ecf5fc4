package degree

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// MockRepository is a test double for Repository.
type MockRepository struct {
	ListFunc             func(ctx context.Context) ([]*Degree, error)
	FindBySlugFunc       func(ctx context.Context, slug string) (*Degree, error)
	SearchByKeywordsFunc func(ctx context.Context, keywords []string, limit int) ([]*Degree, error)
	UpsertFunc           func(ctx context.Context, d *Degree) error
	listCalls            int
	searchCalls          int
}

func (m *MockRepository) List(ctx context.Context) ([]*Degree, error) {
	m.listCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockRepository) FindBySlug(ctx context.Context, slug string) (*Degree, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "Degree not found", nil)
}

func (m *MockRepository) SearchByKeywords(ctx context.Context, keywords []string, limit int) ([]*Degree, error) {
	m.searchCalls++
	if m.SearchByKeywordsFunc != nil {
		return m.SearchByKeywordsFunc(ctx, keywords, limit)
	}
	return nil, nil
}

func (m *MockRepository) Upsert(ctx context.Context, d *Degree) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, d)
	}
	return nil
}

type mapCache struct {
	list        []*Degree
	bySlug      map[string]*Degree
	invalidated int
}

func newMapCache() *mapCache { return &mapCache{bySlug: map[string]*Degree{}} }

func (c *mapCache) GetList(context.Context) ([]*Degree, bool) { return c.list, c.list != nil }
func (c *mapCache) SetList(_ context.Context, degrees []*Degree) { c.list = degrees }
func (c *mapCache) GetBySlug(_ context.Context, slug string) (*Degree, bool) {
	d, ok := c.bySlug[slug]
	return d, ok
}
func (c *mapCache) SetBySlug(_ context.Context, d *Degree) { c.bySlug[d.Slug] = d }
func (c *mapCache) Invalidate(context.Context) {
	c.invalidated++
	c.list = nil
	c.bySlug = map[string]*Degree{}
}

func TestList_UsesCache(t *testing.T) {
	repo := &MockRepository{ListFunc: func(context.Context) ([]*Degree, error) {
		return []*Degree{{Slug: "ba-law", Name: "BA Law"}}, nil
	}}
	svc := NewService(repo, newMapCache(), zerolog.Nop())

	for i := 0; i < 3; i++ {
		got, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
	}
	assert.Equal(t, 1, repo.listCalls)
}

func TestGetBySlug(t *testing.T) {
	repo := &MockRepository{FindBySlugFunc: func(ctx context.Context, slug string) (*Degree, error) {
		if slug == "msc-data" {
			return &Degree{Slug: slug, Name: "MSc Data"}, nil
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "Degree not found", nil)
	}}
	cache := newMapCache()
	svc := NewService(repo, cache, zerolog.Nop())

	d, err := svc.GetBySlug(context.Background(), "msc-data")
	require.NoError(t, err)
	assert.Equal(t, "MSc Data", d.Name)
	assert.Contains(t, cache.bySlug, "msc-data")

	_, err = svc.GetBySlug(context.Background(), "nope")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))

	_, err = svc.GetBySlug(context.Background(), "  ")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestSearch_SkipsEmptyKeywords(t *testing.T) {
	repo := &MockRepository{}
	svc := NewService(repo, nil, zerolog.Nop())

	got, err := svc.Search(context.Background(), nil, 3)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, repo.searchCalls)
}

func TestUpsert(t *testing.T) {
	var stored *Degree
	repo := &MockRepository{UpsertFunc: func(_ context.Context, d *Degree) error {
		stored = d
		return nil
	}}
	cache := newMapCache()
	svc := NewService(repo, cache, zerolog.Nop())

	require.NoError(t, svc.Upsert(context.Background(), &Degree{Slug: " msc-ai ", Name: "MSc AI"}))
	assert.Equal(t, "msc-ai", stored.Slug)
	assert.Equal(t, 1, cache.invalidated)

	err := svc.Upsert(context.Background(), &Degree{Slug: "no-name"})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Equal(t, 1, cache.invalidated)
}
