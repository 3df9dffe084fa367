package app

import (
	"fmt"
	"net/http"
	"resetme/internal/app/deps"
	"resetme/internal/app/services"
	forgotpassword "resetme/internal/http/handlers/auth/forgot_password"
	resetpassword "resetme/internal/http/handlers/auth/reset_password"
	"resetme/internal/http/handlers/health"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	router.Method(http.MethodGet, "/", health.New())
	router.Method(
		http.MethodPost,
		"/forgot-password",
		forgotpassword.New(s.RequestPasswordReset, deps.Config.IsTestMode),
	)
	router.Method(
		http.MethodPost,
		"/reset-password",
		resetpassword.New(s.ResetPassword),
	)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)
	return &http.Server{Addr: address, Handler: router}
}
