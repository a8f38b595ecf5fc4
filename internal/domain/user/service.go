package user

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/utils/idgen"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

const (
	msgEmailTaken         = "Email already exists"
	msgInvalidCredentials = "Invalid email or password"
	minPasswordLength     = 8
)

// Service manages accounts and logins.
type Service interface {
	Register(ctx context.Context, params RegisterParams) (*User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	EnsureAdmin(ctx context.Context, email, password string) (*User, error)
}

// DefaultService implements Service.
type DefaultService struct {
	repo   Repository
	hasher PasswordHasher
	tokens TokenIssuer
	log    zerolog.Logger
}

// NewService creates the account service.
func NewService(repo Repository, hasher PasswordHasher, tokens TokenIssuer, log zerolog.Logger) Service {
	return &DefaultService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		log:    log.With().Str("component", "user-service").Logger(),
	}
}

// Register creates a STUDENT or STAFF account. Admins are provisioned
// through EnsureAdmin only.
func (s *DefaultService) Register(ctx context.Context, params RegisterParams) (*User, error) {
	role := params.Role
	if role == "" {
		role = RoleStudent
	}
	if role != RoleStudent && role != RoleStaff {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"role must be STUDENT or STAFF", nil)
	}

	u, err := s.newUser(ctx, params.Email, params.Password, role)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
				msgEmailTaken, err)
		}
		return nil, err
	}
	s.log.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("user registered")
	return u, nil
}

// Login checks credentials and issues a token. Unknown emails and wrong
// passwords produce the same error.
func (s *DefaultService) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return nil, invalidCredentials(ctx)
		}
		return nil, err
	}
	if !s.hasher.Compare(u.PasswordHash, password) {
		return nil, invalidCredentials(ctx)
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "issue access token")
	}
	return &Session{Token: token, User: u}, nil
}

// EnsureAdmin creates an ADMIN account or resets an existing account's
// password and promotes it.
func (s *DefaultService) EnsureAdmin(ctx context.Context, email, password string) (*User, error) {
	u, err := s.newUser(ctx, email, password, RoleAdmin)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpsertByEmail(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info().Str("email", u.Email).Msg("admin account ensured")
	return u, nil
}

func (s *DefaultService) newUser(ctx context.Context, email, password string, role Role) (*User, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"a valid email is required", nil)
	}
	if len(password) < minPasswordLength {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"password must be at least 8 characters", nil)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "hash password")
	}
	id, err := idgen.New(idgen.PrefixUser)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "generate user id")
	}

	return &User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func invalidCredentials(ctx context.Context) error {
	return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
		msgInvalidCredentials, nil)
}
