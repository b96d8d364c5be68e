package http

import (
	"net/http"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"
	"givehope-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// MatchHandler serves match creation, listing, delivery progression and
// cancellation.
type MatchHandler struct {
	matchSvc service.MatchService
	validate *validator.Validate
}

func NewMatchHandler(matchSvc service.MatchService, validate *validator.Validate) *MatchHandler {
	return &MatchHandler{matchSvc: matchSvc, validate: validate}
}

type createMatchPayload struct {
	DonationID string `json:"donation_id" validate:"required"`
	RequestID  string `json:"request_id" validate:"required"`
	Notes      string `json:"notes"`
}

func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	var payload createMatchPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	m, err := h.matchSvc.CreateMatch(r.Context(), actor, payload.DonationID, payload.RequestID, payload.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	m, err := h.matchSvc.GetMatch(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	page, pageSize := pagination(r)
	filter := repository.MatchFilter{
		Status:   domain.MatchStatus(r.URL.Query().Get("status")),
		Page:     page,
		PageSize: pageSize,
	}
	matches, total, err := h.matchSvc.ListMatches(r.Context(), actor, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: matches, Total: total})
}

type deliveryPayload struct {
	Status string `json:"status" validate:"required,oneof=scheduled in_transit delivered"`
}

func (h *MatchHandler) AdvanceDelivery(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	var payload deliveryPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	m, err := h.matchSvc.AdvanceDelivery(r.Context(), actor, mux.Vars(r)["id"], domain.DeliveryStatus(payload.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *MatchHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	m, err := h.matchSvc.CancelMatch(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}
