package wire

import (
	"videogen-portal/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireContact(r chi.Router, contactHandler *adaptor.ContactHandler) {
	r.Post("/api/contact", contactHandler.Submit)
}
