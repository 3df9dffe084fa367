package user

import (
	"fmt"
	c "resetme/internal/core/domain/common"
	e "resetme/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type Account struct {
	ID           ID
	Email        c.Email
	PasswordHash PasswordHash
	ResetToken   c.Optional[ResetToken]
	TokenExpiry  c.Optional[time.Time]
	CreatedAt    time.Time
}

// Validate enforces the token pair invariant: ResetToken and TokenExpiry
// are either both set or both absent.
func (a *Account) Validate() error {
	if a.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for account %d", a.ID))
	}
	if a.ResetToken.IsPresent != a.TokenExpiry.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("reset token and token expiry must be set together for account %d", a.ID),
		)
	}
	return nil
}

func (a *Account) HasPendingReset() bool {
	return a.ResetToken.IsPresent
}
