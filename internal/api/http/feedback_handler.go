package http

import (
	"net/http"

	"givehope-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

// FeedbackHandler serves feedback submission and the public feedback wall.
type FeedbackHandler struct {
	feedbackSvc service.FeedbackService
	validate    *validator.Validate
}

func NewFeedbackHandler(feedbackSvc service.FeedbackService, validate *validator.Validate) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc, validate: validate}
}

type feedbackPayload struct {
	MatchID  *string `json:"match_id"`
	Rating   int32   `json:"rating" validate:"required,min=1,max=5"`
	Comment  string  `json:"comment"`
	IsPublic bool    `json:"is_public"`
}

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	var payload feedbackPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	f, err := h.feedbackSvc.SubmitFeedback(r.Context(), actor, payload.MatchID, payload.Rating, payload.Comment, payload.IsPublic)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (h *FeedbackHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	entries, total, err := h.feedbackSvc.ListPublicFeedback(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: entries, Total: total})
}
