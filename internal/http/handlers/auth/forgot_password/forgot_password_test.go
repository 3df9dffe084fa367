package forgotpassword

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	c "resetme/internal/core/domain/common"
	"resetme/internal/core/domain/user"
	requestpasswordreset "resetme/internal/core/services/request_password_reset"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const TOKEN = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

type stubService struct {
	err   error
	input *requestpasswordreset.Input
}

func (s *stubService) Run(
	ctx context.Context,
	input requestpasswordreset.Input,
) (result requestpasswordreset.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.Account = user.Account{ID: 1, Email: input.Email}
	result.Token = TOKEN
	return result, nil
}

func decodeMessage(t *testing.T, body string) string {
	t.Helper()
	var res struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	return res.Message
}

func TestForgotPasswordHandler(t *testing.T) {
	cases := []struct {
		id              string
		body            string
		serviceErr      error
		expectedStatus  int
		expectedMessage string
		expectedEmail   string
	}{
		{
			id:              "existing account",
			body:            `{"email": "user@example.com"}`,
			expectedStatus:  http.StatusOK,
			expectedMessage: "Password reset email sent",
			expectedEmail:   "user@example.com",
		},
		{
			id:              "email is normalized",
			body:            `{"email": "  User@Example.COM "}`,
			expectedStatus:  http.StatusOK,
			expectedMessage: "Password reset email sent",
			expectedEmail:   "user@example.com",
		},
		{
			id:              "unknown account",
			body:            `{"email": "ghost@example.com"}`,
			serviceErr:      user.ErrAccountDoesNotExist,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "User not found",
		},
		{
			id:              "missing email",
			body:            `{}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Valid email is required",
		},
		{
			id:              "not an email",
			body:            `{"email": "not-an-email"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Valid email is required",
		},
		{
			id:              "malformed body",
			body:            `{"email": `,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Valid email is required",
		},
		{
			id:              "internal error",
			body:            `{"email": "user@example.com"}`,
			serviceErr:      context.DeadlineExceeded,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			service := &stubService{err: testcase.serviceErr}
			handler := New(service, false)

			// Exercise ---
			req := httptest.NewRequest(http.MethodPost, "/forgot-password", strings.NewReader(testcase.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			// Verify ---
			require.Equal(t, testcase.expectedStatus, rec.Code)
			assert.Equal(t, testcase.expectedMessage, decodeMessage(t, rec.Body.String()))
			if testcase.expectedEmail != "" {
				require.NotNil(t, service.input)
				assert.Equal(t, c.Email(testcase.expectedEmail), service.input.Email)
			}
		})
	}
}

func TestForgotPasswordTestModeEchoesToken(t *testing.T) {
	// Setup ---
	handler := New(&stubService{}, true)

	// Exercise ---
	req := httptest.NewRequest(
		http.MethodPost,
		"/forgot-password",
		strings.NewReader(`{"email": "user@example.com"}`),
	)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Verify ---
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, TOKEN, rec.Header().Get("x-test-password-reset-token"))
}

func TestForgotPasswordTokenNotEchoedByDefault(t *testing.T) {
	// Setup ---
	handler := New(&stubService{}, false)

	// Exercise ---
	req := httptest.NewRequest(
		http.MethodPost,
		"/forgot-password",
		strings.NewReader(`{"email": "user@example.com"}`),
	)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Verify ---
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("x-test-password-reset-token"))
}
