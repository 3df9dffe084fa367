package requestpasswordreset

import (
	"context"
	"errors"
	c "resetme/internal/core/domain/common"
	e "resetme/internal/core/domain/errors"
	"resetme/internal/core/domain/logging"
	"resetme/internal/core/domain/user"
	"time"
)

type Input struct {
	Email c.Email
}

type Result struct {
	Account user.Account
	Token   user.ResetToken
	Expiry  time.Time
}

type service struct {
	log                logging.Logger
	accountRepository  user.AccountRepository
	tokenGenerator     user.ResetTokenGenerator
	tokenValidDuration time.Duration
	now                func() time.Time
}

func New(
	log logging.Logger,
	accountRepository user.AccountRepository,
	tokenGenerator user.ResetTokenGenerator,
	tokenValidDuration time.Duration,
	now func() time.Time,
) *service {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		accountRepository:  accountRepository,
		tokenGenerator:     tokenGenerator,
		tokenValidDuration: tokenValidDuration,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	account, err := s.accountRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrAccountDoesNotExist) {
		s.log.Info(ctx, "Account not found for password reset.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	// A prior pending token is overwritten unconditionally: at most one
	// outstanding reset per account.
	token := s.tokenGenerator.GenerateResetToken()
	expiry := s.now().Add(s.tokenValidDuration)

	err = s.accountRepository.SetResetToken(ctx, account.ID, token, expiry)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not store reset token.",
			logging.Entry("accountID", account.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset token has been issued.",
		logging.Entry("accountID", account.ID),
		logging.Entry("expiry", expiry),
	)
	result.Account = account
	result.Token = token
	result.Expiry = expiry
	return result, nil
}
