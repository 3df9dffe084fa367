package resetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "resetme/internal/core/domain/errors"
	"resetme/internal/core/domain/user"
	"resetme/internal/core/services"
	resetpassword "resetme/internal/core/services/reset_password"
	"resetme/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Handler serves POST /reset-password. Unknown and already-consumed tokens
// share one message so the endpoint cannot be probed for which tokens ever
// existed.
type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
		validation.Field(&i.NewPassword, validation.Required, validation.Length(0, 256)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderMessage(rw, "Token and new password are required", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderMessage(rw, "Token and new password are required", http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		resetpassword.Input{
			Token:       user.ResetToken(input.Token),
			NewPassword: user.RawPassword(input.NewPassword),
		},
	)
	if errors.Is(err, user.ErrInvalidResetToken) {
		response.RenderMessage(rw, "Invalid or expired token", http.StatusBadRequest)
		return
	}
	if errors.Is(err, user.ErrResetTokenExpired) {
		response.RenderMessage(rw, "Token has expired", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderMessage(rw, "Failed to reset password", http.StatusInternalServerError)
		return
	}

	response.RenderMessage(rw, "Password reset successful", http.StatusOK)
}
