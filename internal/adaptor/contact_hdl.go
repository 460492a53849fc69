package adaptor

import (
	"encoding/json"
	"net/http"

	"videogen-portal/internal/dto/request"
	"videogen-portal/internal/usecase"
	"videogen-portal/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log,
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Submit(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "submit contact")
		return
	}

	utils.ResponseSuccess(w, "Thanks for your message, we will be in touch soon.", nil)
}
