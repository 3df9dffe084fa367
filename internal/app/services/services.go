package services

import (
	"resetme/internal/app/deps"
	"resetme/internal/core/services"
	requestpasswordreset "resetme/internal/core/services/request_password_reset"
	resetpassword "resetme/internal/core/services/reset_password"
)

type Services struct {
	RequestPasswordReset services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	ResetPassword        services.Service[resetpassword.Input, resetpassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	return &Services{
		RequestPasswordReset: requestpasswordreset.NewWithResetTokenSending(
			deps.Logger,
			deps.ResetTokenSender,
			requestpasswordreset.New(
				deps.Logger,
				deps.AccountRepository,
				deps.ResetTokenGenerator,
				deps.Config.ResetTokenValidDuration,
				deps.Now,
			),
		),
		ResetPassword: resetpassword.New(
			deps.Logger,
			deps.AccountRepository,
			deps.PasswordHasher,
			deps.Now,
		),
	}
}
