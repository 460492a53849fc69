package wire

import (
	"videogen-portal/internal/adaptor"
	"videogen-portal/internal/data/repository"
	"videogen-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/resend-confirmation", authHandler.ResendConfirmation)

	// Confirmation links arrive from the email client as plain GETs.
	r.Get("/confirm/{token}", authHandler.ConfirmEmail)

	// Logout needs a valid session
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/logout", authHandler.Logout)
}
