package user

import (
	"errors"
	"fmt"
	c "resetme/internal/core/domain/common"
)

var (
	ErrAccountDoesNotExist = errors.New("account does not exist")
	ErrInvalidResetToken   = errors.New("invalid reset token")
	ErrResetTokenExpired   = errors.New("reset token has expired")
)

type EmailAlreadyExistsError struct {
	Email c.Email
}

func (e *EmailAlreadyExistsError) Error() string {
	return fmt.Sprintf("account with email %s already exists", e.Email)
}
