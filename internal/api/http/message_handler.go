package http

import (
	"net/http"

	"givehope-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// MessageHandler serves user-to-user messaging.
type MessageHandler struct {
	messageSvc service.MessageService
	validate   *validator.Validate
}

func NewMessageHandler(messageSvc service.MessageService, validate *validator.Validate) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc, validate: validate}
}

type sendMessagePayload struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Content     string `json:"content" validate:"required"`
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	var payload sendMessagePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	m, err := h.messageSvc.SendMessage(r.Context(), actor, payload.RecipientID, payload.Subject, payload.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *MessageHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	page, pageSize := pagination(r)
	messages, total, err := h.messageSvc.Inbox(r.Context(), actor, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: messages, Total: total})
}

func (h *MessageHandler) Sent(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	page, pageSize := pagination(r)
	messages, total, err := h.messageSvc.Sent(r.Context(), actor, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: messages, Total: total})
}

func (h *MessageHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	if err := h.messageSvc.MarkAsRead(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
