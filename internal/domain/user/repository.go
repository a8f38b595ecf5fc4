package user

import "context"

// Repository persists accounts.
type Repository interface {
	// Create returns a CONFLICT platform error for a taken email.
	Create(ctx context.Context, u *User) error
	// FindByEmail returns a NOT_FOUND platform error for unknown emails.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// UpsertByEmail creates the account or replaces its password and role.
	UpsertByEmail(ctx context.Context, u *User) error
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer signs access tokens for a user.
type TokenIssuer interface {
	Issue(u *User) (string, error)
}
