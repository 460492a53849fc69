package adaptor

import (
	"errors"
	"net/http"

	"videogen-portal/internal/usecase"
	"videogen-portal/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Contact *ContactHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Contact: NewContactHandler(service.Contact, log),
	}
}

// handleServiceError maps workflow errors to HTTP responses. Anything that
// is not a known workflow error is an infrastructure failure.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrPasswordMismatch),
		errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrDuplicateAccount),
		errors.Is(err, usecase.ErrInvalidToken),
		errors.Is(err, usecase.ErrAlreadyConfirmed):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrEmailNotConfirmed):
		log.Warn(operation+" unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrAccountNotFound):
		log.Warn(operation+" target missing", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
