package lead

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsols/matsols-api/internal/utils/idgen"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// MockRepository is a test double for Repository.
type MockRepository struct {
	CreateFunc func(ctx context.Context, l *Lead) error
	ListFunc   func(ctx context.Context) ([]*Lead, error)
}

func (m *MockRepository) Create(ctx context.Context, l *Lead) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	return nil
}

func (m *MockRepository) List(ctx context.Context) ([]*Lead, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func TestSubmit(t *testing.T) {
	var stored *Lead
	svc := NewService(&MockRepository{CreateFunc: func(_ context.Context, l *Lead) error {
		stored = l
		return nil
	}}, zerolog.Nop())

	l, err := svc.Submit(context.Background(), CreateParams{
		FullName:      "  Amina Yusuf ",
		Email:         " Amina@Example.COM ",
		Phone:         "+234 801 000 0000",
		TargetCountry: "UK",
	})
	require.NoError(t, err)

	assert.Same(t, stored, l)
	assert.True(t, idgen.ValidateIDFormat(l.ID, idgen.PrefixLead), l.ID)
	assert.Equal(t, "Amina Yusuf", l.FullName)
	assert.Equal(t, "amina@example.com", l.Email)
	assert.False(t, l.CreatedAt.IsZero())
}

func TestSubmit_RequiresNameAndEmail(t *testing.T) {
	svc := NewService(&MockRepository{CreateFunc: func(_ context.Context, l *Lead) error {
		t.Error("repository must not be called")
		return nil
	}}, zerolog.Nop())

	for name, params := range map[string]CreateParams{
		"no name":  {Email: "a@example.com"},
		"no email": {FullName: "A"},
		"blank":    {FullName: "  ", Email: "  "},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), params)
			require.Error(t, err)
			assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
		})
	}
}

func TestSubmit_PropagatesRepositoryError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&MockRepository{CreateFunc: func(_ context.Context, l *Lead) error {
		return boom
	}}, zerolog.Nop())

	_, err := svc.Submit(context.Background(), CreateParams{FullName: "A", Email: "a@example.com"})
	assert.ErrorIs(t, err, boom)
}
