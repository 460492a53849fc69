package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"videogen-portal/internal/data/entity"
	"videogen-portal/internal/data/repository"
	"videogen-portal/internal/dto/request"
	"videogen-portal/internal/dto/response"
	"videogen-portal/pkg/mailer"
	"videogen-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	ConfirmEmail(ctx context.Context, token string) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	ResendConfirmation(ctx context.Context, email string) error
}

type authService struct {
	repo   *repository.Repository
	mailer mailer.Dispatcher
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	dispatcher mailer.Dispatcher,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mailer: dispatcher,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Required fields
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Password confirmation
	if req.Password != req.PasswordConfirmation {
		return nil, ErrPasswordMismatch
	}

	// 3. Email syntax
	if !utils.ValidateEmail(req.Email) {
		return nil, ErrInvalidEmail
	}

	// 4. Existing account check
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	// 5. Hash password and issue confirmation token
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	token, err := utils.GenerateConfirmToken()
	if err != nil {
		s.log.Error("Failed to generate confirm token", zap.Error(err))
		return nil, fmt.Errorf("failed to create account")
	}

	// 6. Create unconfirmed account
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		CompanyName:  req.CompanyName,
		Role:         req.Role,
		PasswordHash: hashedPassword,
		IsConfirmed:  false,
		ConfirmToken: &token,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateAccount
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 7. Confirmation email. Registration stands once the row exists, so a
	// failed dispatch is logged and swallowed.
	s.sendConfirmationEmail(ctx, user.Email, token)

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.RegisterResponse{
		UserID:      user.ID.String(),
		Email:       user.Email,
		IsConfirmed: user.IsConfirmed,
	}, nil
}

func (s *authService) ConfirmEmail(ctx context.Context, token string) (*response.RegisterResponse, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.repo.User.FindByToken(ctx, token)
	if err != nil {
		s.log.Error("Failed to look up confirm token", zap.Error(err))
		return nil, fmt.Errorf("failed to confirm email")
	}
	if user == nil {
		// Never issued, or already consumed by a previous confirmation.
		return nil, ErrInvalidToken
	}

	if err := s.repo.User.Confirm(ctx, user.ID); err != nil {
		s.log.Error("Failed to confirm user", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to confirm email")
	}

	s.log.Info("Email confirmed",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.RegisterResponse{
		UserID:      user.ID.String(),
		Email:       user.Email,
		IsConfirmed: true,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Required fields
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}

	// 3. Unknown email and wrong password return the same error so the
	// response does not reveal which emails have accounts.
	if user == nil {
		s.log.Debug("Login for unknown email", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Debug("Wrong password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 4. Only confirmed accounts may log in
	if !user.IsConfirmed {
		return nil, ErrEmailNotConfirmed
	}

	// 5. Create session
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return response.AuthToResponse(user, session), nil
}

// Logout revokes the session. It succeeds even when the token is unknown or
// already revoked.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

// ResendConfirmation re-sends the confirmation link for an unconfirmed
// account. The existing token is reused; a token stays live until consumed.
func (s *authService) ResendConfirmation(ctx context.Context, email string) error {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return ErrAccountNotFound
	}
	if user.IsConfirmed {
		return ErrAlreadyConfirmed
	}
	if user.ConfirmToken == nil {
		s.log.Error("Unconfirmed account without token", zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to resend confirmation")
	}

	s.sendConfirmationEmail(ctx, user.Email, *user.ConfirmToken)
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *authService) confirmationURL(token string) string {
	return strings.TrimSuffix(s.config.App.BaseURL, "/") + "/confirm/" + token
}

func (s *authService) sendConfirmationEmail(ctx context.Context, email, token string) {
	subject := "Confirm your AI VideoGen email"
	body := fmt.Sprintf(`Hi,

Thanks for registering for the AI VideoGen demo.

Please confirm your email address by opening the link below:

%s

If you did not register, just ignore this message.

AI VideoGen
`, s.confirmationURL(token))

	if err := s.mailer.Send(ctx, email, subject, body); err != nil {
		s.log.Error("Failed to send confirmation email",
			zap.Error(err),
			zap.String("email", email))
	}
}
