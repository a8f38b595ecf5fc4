package user

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

type memoryRepo struct {
	byEmail map[string]*User
	findErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byEmail: map[string]*User{}}
}

func (r *memoryRepo) Create(ctx context.Context, u *User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeConflict, "duplicate", nil)
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memoryRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "not found", nil)
	}
	return u, nil
}

func (r *memoryRepo) UpsertByEmail(_ context.Context, u *User) error {
	if existing, ok := r.byEmail[u.Email]; ok {
		existing.PasswordHash = u.PasswordHash
		existing.Role = u.Role
		u.ID = existing.ID
		return nil
	}
	r.byEmail[u.Email] = u
	return nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Compare(hash, password string) bool  { return hash == "hashed:"+password }

type staticIssuer struct{}

func (staticIssuer) Issue(u *User) (string, error) { return "token-for-" + u.ID, nil }

func newTestService(repo Repository) Service {
	return NewService(repo, plainHasher{}, staticIssuer{}, zerolog.Nop())
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to student", func(t *testing.T) {
		svc := newTestService(newMemoryRepo())
		u, err := svc.Register(ctx, RegisterParams{Email: " Ada@Example.com ", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, RoleStudent, u.Role)
		assert.Equal(t, "ada@example.com", u.Email)
		assert.Equal(t, "hashed:correct-horse", u.PasswordHash)
		assert.NotEmpty(t, u.ID)
	})

	t.Run("staff allowed", func(t *testing.T) {
		svc := newTestService(newMemoryRepo())
		u, err := svc.Register(ctx, RegisterParams{Email: "staff@example.com", Password: "correct-horse", Role: RoleStaff})
		require.NoError(t, err)
		assert.Equal(t, RoleStaff, u.Role)
	})

	t.Run("admin rejected", func(t *testing.T) {
		svc := newTestService(newMemoryRepo())
		_, err := svc.Register(ctx, RegisterParams{Email: "root@example.com", Password: "correct-horse", Role: RoleAdmin})
		assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	})

	t.Run("short password rejected", func(t *testing.T) {
		svc := newTestService(newMemoryRepo())
		_, err := svc.Register(ctx, RegisterParams{Email: "a@example.com", Password: "short"})
		assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := newTestService(newMemoryRepo())
		_, err := svc.Register(ctx, RegisterParams{Email: "a@example.com", Password: "correct-horse"})
		require.NoError(t, err)

		_, err = svc.Register(ctx, RegisterParams{Email: "A@example.com", Password: "other-password"})
		require.Error(t, err)
		perr := platformerrors.GetPlatformError(err)
		require.NotNil(t, perr)
		assert.Equal(t, platformerrors.ErrorTypeConflict, perr.Type)
		assert.Equal(t, "Email already exists", perr.Message)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	svc := newTestService(repo)
	registered, err := svc.Register(ctx, RegisterParams{Email: "student@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		session, err := svc.Login(ctx, "Student@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "token-for-"+registered.ID, session.Token)
		assert.Equal(t, registered.ID, session.User.ID)
	})

	for name, creds := range map[string][2]string{
		"wrong password": {"student@example.com", "wrong-horse"},
		"unknown email":  {"nobody@example.com", "correct-horse"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(ctx, creds[0], creds[1])
			perr := platformerrors.GetPlatformError(err)
			require.NotNil(t, perr)
			assert.Equal(t, platformerrors.ErrorTypeUnauthorized, perr.Type)
			assert.Equal(t, "Invalid email or password", perr.Message)
		})
	}

	t.Run("storage failure surfaces", func(t *testing.T) {
		repo.findErr = errors.New("db down")
		defer func() { repo.findErr = nil }()
		_, err := svc.Login(ctx, "student@example.com", "correct-horse")
		require.Error(t, err)
		assert.False(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized))
	})
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	svc := newTestService(repo)

	existing, err := svc.Register(ctx, RegisterParams{Email: "admin@matsols.com", Password: "old-password"})
	require.NoError(t, err)

	admin, err := svc.EnsureAdmin(ctx, "admin@matsols.com", "new-password")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, admin.ID)

	stored := repo.byEmail["admin@matsols.com"]
	assert.Equal(t, RoleAdmin, stored.Role)
	assert.Equal(t, "hashed:new-password", stored.PasswordHash)
}
