package resetpassword

import (
	"context"
	"errors"
	e "resetme/internal/core/domain/errors"
	"resetme/internal/core/domain/logging"
	"resetme/internal/core/domain/user"
	"resetme/internal/core/services"
	"time"
)

type Input struct {
	Token       user.ResetToken
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log               logging.Logger
	accountRepository user.AccountRepository
	passwordHasher    user.PasswordHasher
	now               func() time.Time
}

func New(
	log logging.Logger,
	accountRepository user.AccountRepository,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
		passwordHasher:    passwordHasher,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	account, err := s.accountRepository.GetByResetToken(ctx, input.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrInvalidResetToken) {
		s.log.Info(ctx, "Account not found for reset token.")
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not get account by reset token.", logging.Entry("err", err))
		return result, err
	}

	if !account.TokenExpiry.IsPresent {
		return result, user.ErrInvalidResetToken
	}
	// Expiry is passive: the token row is left in place and stays
	// permanently rejected until a new reset request overwrites it.
	if !s.now().Before(account.TokenExpiry.Value) {
		s.log.Info(
			ctx,
			"Reset token has expired.",
			logging.Entry("accountID", account.ID),
			logging.Entry("expiry", account.TokenExpiry.Value),
		)
		return result, user.ErrResetTokenExpired
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	err = s.accountRepository.ResetPassword(ctx, account.ID, input.Token, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrInvalidResetToken) {
		s.log.Info(
			ctx,
			"Reset token was consumed by a concurrent request.",
			logging.Entry("accountID", account.ID),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update account password.",
			logging.Entry("accountID", account.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("accountID", account.ID),
	)
	return result, nil
}
