package user

import (
	"context"
	c "resetme/internal/core/domain/common"
	"time"
)

type CreateAccountInput struct {
	Email        c.Email
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type AccountRepository interface {
	Create(ctx context.Context, input CreateAccountInput) (Account, error)
	GetByEmail(ctx context.Context, email c.Email) (Account, error)
	GetByResetToken(ctx context.Context, token ResetToken) (Account, error)
	// SetResetToken stores the token pair on the account, overwriting any
	// pending token. Keyed by account ID, never by email.
	SetResetToken(ctx context.Context, id ID, token ResetToken, expiry time.Time) error
	// ResetPassword updates the password hash and clears the token pair in
	// a single write. The write is guarded by the token value: if another
	// request consumed the token first, ErrInvalidResetToken is returned
	// and the password is left untouched.
	ResetPassword(ctx context.Context, id ID, token ResetToken, password PasswordHash) error
}
