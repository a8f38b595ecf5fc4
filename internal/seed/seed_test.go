package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/domain/update"
)

type fakeDegrees struct {
	degree.Service
	upserted []*degree.Degree
	failSlug string
}

func (f *fakeDegrees) Upsert(_ context.Context, d *degree.Degree) error {
	if d.Slug == f.failSlug {
		return errors.New("boom")
	}
	f.upserted = append(f.upserted, d)
	return nil
}

type fakeUpdates struct {
	update.Service
	created []update.CreateParams
}

func (f *fakeUpdates) Create(_ context.Context, params update.CreateParams) (*update.Update, error) {
	f.created = append(f.created, params)
	return &update.Update{Title: params.Title}, nil
}

const degreesYAML = `
- slug: bsc-computer-science
  name: BSc Computer Science
  level: Undergraduate
  about: Software and systems
- slug: broken
  name: Broken
- slug: mba
  name: Master of Business Administration
`

func TestDegrees(t *testing.T) {
	records, err := DecodeDegrees(strings.NewReader(degreesYAML))
	require.NoError(t, err)
	require.Len(t, records, 3)

	svc := &fakeDegrees{failSlug: "broken"}
	report := Degrees(context.Background(), svc, records, zerolog.Nop())

	assert.Equal(t, Report{Written: 2, Failed: 1}, report)
	require.Len(t, svc.upserted, 2)
	first := svc.upserted[0]
	assert.Equal(t, "bsc-computer-science", first.Slug)
	require.NotNil(t, first.About)
	assert.Equal(t, "Software and systems", *first.About)
	assert.Nil(t, first.Code)
}

const updatesYAML = `
hero:
  - title: Spring intake open
    cta: Apply now
    subtitle: Limited places
grid:
  - title: Visa changes
    date: 12 May
    desc: What students need to know
    image: https://example.com/visa.png
  - title: Open day
`

func TestUpdates(t *testing.T) {
	file, err := DecodeUpdates(strings.NewReader(updatesYAML))
	require.NoError(t, err)

	svc := &fakeUpdates{}
	report := Updates(context.Background(), svc, file, zerolog.Nop())

	assert.Equal(t, Report{Written: 3}, report)
	require.Len(t, svc.created, 3)

	hero := svc.created[0]
	assert.Equal(t, update.CategoryHero, hero.Category)
	assert.Equal(t, "Apply now", hero.Date)
	assert.Equal(t, "Limited places", hero.Excerpt)
	assert.Nil(t, hero.Image)

	grid := svc.created[1]
	assert.Equal(t, update.CategoryGrid, grid.Category)
	assert.Equal(t, "12 May", grid.Date)
	require.NotNil(t, grid.Image)

	// Date falls back to the service default.
	assert.Empty(t, svc.created[2].Date)
}

func TestDecode_Empty(t *testing.T) {
	records, err := DecodeDegrees(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)

	file, err := DecodeUpdates(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, file.Hero)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := DecodeDegrees(strings.NewReader("slug: [unterminated"))
	assert.Error(t, err)
}
