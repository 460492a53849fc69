package usecase

import (
	"videogen-portal/internal/data/repository"
	"videogen-portal/pkg/mailer"
	"videogen-portal/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Contact ContactService
}

func NewService(repo *repository.Repository, dispatcher mailer.Dispatcher, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, dispatcher, config, log),
		User:    NewUserService(repo.User, log),
		Contact: NewContactService(dispatcher, config, log),
	}
}
