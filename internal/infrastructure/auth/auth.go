package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/matsols/matsols-api/internal/config"
	"github.com/matsols/matsols-api/internal/domain/user"
	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

const principalKey = "auth_principal"

const (
	msgTokenMissing  = "Access denied. Token missing."
	msgTokenInvalid  = "Invalid or expired token."
	msgAdminRequired = "Unauthorized. Admin access required."
)

// Principal is the authenticated caller.
type Principal struct {
	UserID string
	Email  string
	Role   user.Role
}

// Validator checks bearer tokens. Tokens signed with the shared secret are
// always accepted; RSA tokens are accepted when a JWKS URL is configured.
type Validator struct {
	cfg    *config.Config
	log    zerolog.Logger
	secret []byte
	jwks   *keyfunc.JWKS
}

// NewValidator initializes JWKS fetching when AUTH_JWKS_URL is set.
func NewValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Validator, error) {
	v := &Validator{
		cfg:    cfg,
		log:    log.With().Str("component", "auth").Logger(),
		secret: []byte(cfg.JWTSecret),
	}
	if strings.TrimSpace(cfg.AuthJWKSURL) == "" {
		return v, nil
	}

	options := keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			v.log.Error().Err(err).Msg("jwks refresh error")
		},
	}
	jwks, err := keyfunc.Get(cfg.AuthJWKSURL, options)
	if err != nil {
		return nil, err
	}
	v.jwks = jwks
	return v, nil
}

// Parse validates a raw token and returns its principal.
func (v *Validator) Parse(tokenString string) (*Principal, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "RS256", "RS384", "RS512"})}
	if issuer := strings.TrimSpace(v.cfg.AuthIssuer); issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience := strings.TrimSpace(v.cfg.AuthAudience); audience != "" && v.jwks != nil {
		opts = append(opts, jwt.WithAudience(audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keyFor, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return nil, errors.New("token has no subject")
	}
	return &Principal{UserID: userID, Email: claims.Email, Role: claims.Role}, nil
}

func (v *Validator) keyFor(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
		return v.secret, nil
	}
	if v.jwks == nil {
		return nil, errors.New("asymmetric tokens are not accepted")
	}
	return v.jwks.Keyfunc(token)
}

// Middleware requires a valid bearer token.
func (v *Validator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			platformerrors.WriteUnauthorized(c, msgTokenMissing)
			return
		}

		principal, err := v.Parse(tokenString)
		if err != nil {
			v.log.Debug().Err(err).Msg("rejected bearer token")
			platformerrors.WriteForbidden(c, msgTokenInvalid)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin must run after Middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Role != user.RoleAdmin {
			platformerrors.WriteForbidden(c, msgAdminRequired)
			return
		}
		c.Next()
	}
}

// PrincipalFromContext returns the caller stored by Middleware.
func PrincipalFromContext(c *gin.Context) (*Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	principal, ok := value.(*Principal)
	return principal, ok && principal != nil
}

// Ready indicates if the validator is prepared.
func (v *Validator) Ready() bool {
	if v == nil {
		return false
	}
	return strings.TrimSpace(v.cfg.AuthJWKSURL) == "" || v.jwks != nil
}

// Close stops background JWKS refreshes.
func (v *Validator) Close() {
	if v != nil && v.jwks != nil {
		v.jwks.EndBackground()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
