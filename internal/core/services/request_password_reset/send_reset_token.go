package requestpasswordreset

import (
	"context"
	"errors"
	e "resetme/internal/core/domain/errors"
	"resetme/internal/core/domain/logging"
	"resetme/internal/core/domain/user"
	"resetme/internal/core/services"
)

type serviceWithResetTokenSending struct {
	log    logging.Logger
	sender user.ResetTokenSender
	inner  services.Service[Input, Result]
}

// NewWithResetTokenSending decorates the reset request with the email send.
// Delivery is best-effort: the token is already durable when the send runs,
// and a delivery failure is logged without failing the operation, so the
// caller cannot tell a lost email from a delivered one.
func NewWithResetTokenSending(
	log logging.Logger,
	sender user.ResetTokenSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithResetTokenSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithResetTokenSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending password reset token.", logging.Entry("err", err))
		return result, err
	}

	err = s.sender.SendResetToken(ctx, result.Account, result.Token)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset token.",
			logging.Entry("accountID", result.Account.ID),
			logging.Entry("err", err),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Password reset token has been sent.",
		logging.Entry("accountID", result.Account.ID),
	)
	return result, nil
}
