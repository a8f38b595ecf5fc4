package degree

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/infrastructure/database/dbtest"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

func strPtr(s string) *string { return &s }

func seed(t *testing.T, repo *DegreeRepository, degrees ...*domain.Degree) {
	t.Helper()
	for _, d := range degrees {
		require.NoError(t, repo.Upsert(context.Background(), d))
	}
}

func slugs(degrees []*domain.Degree) []string {
	out := make([]string, len(degrees))
	for i, d := range degrees {
		out[i] = d.Slug
	}
	return out
}

func TestSearchByKeywords(t *testing.T) {
	repo := NewDegreeRepository(dbtest.Open(t))
	ctx := context.Background()
	seed(t, repo,
		&domain.Degree{Slug: "ba-law", Name: "BA Law", About: strPtr("Legal practice and policy")},
		&domain.Degree{Slug: "msc-computer-science", Name: "MSc Computer Science"},
		&domain.Degree{Slug: "bsc-nursing", Name: "BSc Nursing", About: strPtr("Clinical SCIENCE placements")},
		&domain.Degree{Slug: "mba", Name: "Global MBA"},
	)

	t.Run("name match is case-insensitive", func(t *testing.T) {
		got, err := repo.SearchByKeywords(ctx, []string{"computer"}, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"msc-computer-science"}, slugs(got))
	})

	t.Run("about match in insertion order", func(t *testing.T) {
		got, err := repo.SearchByKeywords(ctx, []string{"science"}, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"msc-computer-science", "bsc-nursing"}, slugs(got))
	})

	t.Run("any keyword matches", func(t *testing.T) {
		got, err := repo.SearchByKeywords(ctx, []string{"interested", "policy", "global"}, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"ba-law", "mba"}, slugs(got))
	})

	t.Run("null about never matches", func(t *testing.T) {
		got, err := repo.SearchByKeywords(ctx, []string{"placements"}, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"bsc-nursing"}, slugs(got))
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		got, err := repo.SearchByKeywords(ctx, []string{"%%%%", "____"}, 3)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no keywords skips query", func(t *testing.T) {
		got, err := repo.SearchByKeywords(ctx, nil, 3)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSearchByKeywords_Limit(t *testing.T) {
	repo := NewDegreeRepository(dbtest.Open(t))
	for i := 1; i <= 5; i++ {
		seed(t, repo, &domain.Degree{Slug: fmt.Sprintf("eng-%d", i), Name: fmt.Sprintf("Engineering %d", i)})
	}

	got, err := repo.SearchByKeywords(context.Background(), []string{"engineering"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"eng-1", "eng-2", "eng-3"}, slugs(got))
}

func TestListAndFindBySlug(t *testing.T) {
	repo := NewDegreeRepository(dbtest.Open(t))
	ctx := context.Background()
	seed(t, repo,
		&domain.Degree{Slug: "msc-zoology", Name: "MSc Zoology"},
		&domain.Degree{Slug: "ba-art", Name: "BA Art", Level: strPtr("undergraduate")},
	)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ba-art", "msc-zoology"}, slugs(all))

	d, err := repo.FindBySlug(ctx, "ba-art")
	require.NoError(t, err)
	assert.Equal(t, "BA Art", d.Name)
	require.NotNil(t, d.Level)
	assert.Equal(t, "undergraduate", *d.Level)

	_, err = repo.FindBySlug(ctx, "missing")
	perr := platformerrors.GetPlatformError(err)
	require.NotNil(t, perr)
	assert.Equal(t, platformerrors.ErrorTypeNotFound, perr.Type)
	assert.Equal(t, "Degree not found", perr.Message)
}

func TestUpsert_ReplacesBySlug(t *testing.T) {
	repo := NewDegreeRepository(dbtest.Open(t))
	ctx := context.Background()

	first := &domain.Degree{Slug: "msc-ai", Name: "MSc AI", Duration: strPtr("1 year")}
	seed(t, repo, first)

	second := &domain.Degree{Slug: "msc-ai", Name: "MSc Artificial Intelligence"}
	require.NoError(t, repo.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "MSc Artificial Intelligence", all[0].Name)
	assert.Nil(t, all[0].Duration)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}
