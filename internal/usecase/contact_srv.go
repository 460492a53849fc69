package usecase

import (
	"context"
	"fmt"

	"videogen-portal/internal/dto/request"
	"videogen-portal/pkg/mailer"
	"videogen-portal/pkg/utils"

	"go.uber.org/zap"
)

type ContactService interface {
	Submit(ctx context.Context, req *request.ContactRequest) error
}

type contactService struct {
	mailer mailer.Dispatcher
	config *utils.Config
	log    *zap.Logger
}

func NewContactService(dispatcher mailer.Dispatcher, config *utils.Config, log *zap.Logger) ContactService {
	return &contactService{
		mailer: dispatcher,
		config: config,
		log:    log,
	}
}

// Submit forwards a contact-form message to the operator mailbox. Delivery
// is best effort: once the input is valid the submission succeeds even when
// the dispatch fails.
func (s *contactService) Submit(ctx context.Context, req *request.ContactRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Contact validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if !utils.ValidateEmail(req.Email) {
		return ErrInvalidEmail
	}

	subject := fmt.Sprintf("AI VideoGen contact request: %s", req.Subject)
	body := fmt.Sprintf(`Name: %s
Email: %s

Message:
%s
`, req.Name, req.Email, req.Message)

	if err := s.mailer.Send(ctx, s.config.Contact.Recipient, subject, body); err != nil {
		s.log.Error("Failed to forward contact message",
			zap.Error(err),
			zap.String("from", req.Email))
		return nil
	}

	s.log.Info("Contact message forwarded", zap.String("from", req.Email))
	return nil
}
