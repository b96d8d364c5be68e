package http

import (
	"net/http"

	"givehope-backend/internal/service"

	"github.com/gorilla/mux"
)

// AdminHandler serves the NGO admin review queue, matching pool and
// dashboard statistics.
type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

type rejectPayload struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) ApproveDonation(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	d, err := h.adminSvc.ApproveDonation(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *AdminHandler) RejectDonation(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	var payload rejectPayload
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &payload); err != nil {
			writeError(w, err)
			return
		}
	}
	d, err := h.adminSvc.RejectDonation(r.Context(), actor, mux.Vars(r)["id"], payload.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *AdminHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	req, err := h.adminSvc.ApproveRequest(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *AdminHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	var payload rejectPayload
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &payload); err != nil {
			writeError(w, err)
			return
		}
	}
	req, err := h.adminSvc.RejectRequest(r.Context(), actor, mux.Vars(r)["id"], payload.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *AdminHandler) PendingApprovals(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	approvals, err := h.adminSvc.PendingApprovals(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, approvals)
}

func (h *AdminHandler) ApprovedPool(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	pool, err := h.adminSvc.ApprovedPool(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pool)
}

func (h *AdminHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	stats, err := h.adminSvc.Statistics(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
