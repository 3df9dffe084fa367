package forgotpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "resetme/internal/core/domain/common"
	e "resetme/internal/core/domain/errors"
	"resetme/internal/core/domain/user"
	"resetme/internal/core/services"
	requestpasswordreset "resetme/internal/core/services/request_password_reset"
	"resetme/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Handler serves POST /forgot-password. A 404 for an unknown email reveals
// account existence; the observed API contract keeps it that way.
type Handler struct {
	service    services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	isTestMode bool
}

func New(
	service services.Service[requestpasswordreset.Input, requestpasswordreset.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email string `json:"email"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderMessage(rw, "Valid email is required", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderMessage(rw, "Valid email is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		requestpasswordreset.Input{Email: c.NewEmail(input.Email)},
	)
	if errors.Is(err, user.ErrAccountDoesNotExist) {
		response.RenderMessage(rw, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode {
		rw.Header().Set("x-test-password-reset-token", string(result.Token))
	}
	response.RenderMessage(rw, "Password reset email sent", http.StatusOK)
}
