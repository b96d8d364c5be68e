package http

import (
	"net/http"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"
	"givehope-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// RequestHandler serves the recipient-facing request CRUD.
type RequestHandler struct {
	requestSvc service.RequestService
	validate   *validator.Validate
}

func NewRequestHandler(requestSvc service.RequestService, validate *validator.Validate) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc, validate: validate}
}

type requestPayload struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required,oneof=clothing food electronics furniture education medical other"`
	Quantity    int32  `json:"quantity" validate:"required,min=1"`
	Urgency     string `json:"urgency" validate:"required,oneof=low medium high critical"`
	FamilySize  int32  `json:"family_size" validate:"required,min=1"`
	Situation   string `json:"situation"`
}

func (p requestPayload) toInput() service.RequestInput {
	return service.RequestInput{
		Title:       p.Title,
		Description: p.Description,
		Category:    domain.ItemCategory(p.Category),
		Quantity:    p.Quantity,
		Urgency:     domain.UrgencyLevel(p.Urgency),
		FamilySize:  p.FamilySize,
		Situation:   p.Situation,
	}
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	var payload requestPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	req, err := h.requestSvc.CreateRequest(r.Context(), actor, payload.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	req, err := h.requestSvc.GetRequest(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	var payload requestPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	req, err := h.requestSvc.UpdateRequest(r.Context(), actor, mux.Vars(r)["id"], payload.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	if err := h.requestSvc.DeleteRequest(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	page, pageSize := pagination(r)
	filter := repository.RequestFilter{
		Status:   domain.RequestStatus(r.URL.Query().Get("status")),
		Category: domain.ItemCategory(r.URL.Query().Get("category")),
		Page:     page,
		PageSize: pageSize,
	}
	requests, total, err := h.requestSvc.ListRequests(r.Context(), actor, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: requests, Total: total})
}
