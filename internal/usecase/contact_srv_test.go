package usecase

import (
	"context"
	"testing"

	"videogen-portal/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestContactService(t *testing.T) (ContactService, *fakeDispatcher) {
	t.Helper()
	dispatcher := &fakeDispatcher{}
	svc := NewContactService(dispatcher, testConfig(), zap.NewNop())
	return svc, dispatcher
}

func contactReq() *request.ContactRequest {
	return &request.ContactRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Pricing",
		Message: "How much does the demo cost?",
	}
}

func TestSubmit_Success(t *testing.T) {
	svc, dispatcher := newTestContactService(t)

	require.NoError(t, svc.Submit(context.Background(), contactReq()))

	require.Equal(t, 1, dispatcher.count())
	mail := dispatcher.last()
	assert.Equal(t, "ops@videogen.test", mail.to)
	assert.Contains(t, mail.subject, "Pricing")
	assert.Contains(t, mail.body, "Alice")
	assert.Contains(t, mail.body, "alice@example.com")
	assert.Contains(t, mail.body, "How much does the demo cost?")
}

func TestSubmit_MissingField(t *testing.T) {
	svc, dispatcher := newTestContactService(t)

	req := contactReq()
	req.Message = ""

	assert.ErrorIs(t, svc.Submit(context.Background(), req), ErrValidation)
	assert.Equal(t, 0, dispatcher.count())
}

func TestSubmit_InvalidEmail(t *testing.T) {
	svc, dispatcher := newTestContactService(t)

	req := contactReq()
	req.Email = "not-an-email"

	assert.ErrorIs(t, svc.Submit(context.Background(), req), ErrInvalidEmail)
	assert.Equal(t, 0, dispatcher.count())
}

func TestSubmit_DispatchFailureStillSucceeds(t *testing.T) {
	svc, dispatcher := newTestContactService(t)
	dispatcher.sendErr = assert.AnError

	assert.NoError(t, svc.Submit(context.Background(), contactReq()))
}
