package http

import (
	"net/http"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"
	"givehope-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// DonationHandler serves the donor-facing donation CRUD.
type DonationHandler struct {
	donationSvc service.DonationService
	validate    *validator.Validate
}

func NewDonationHandler(donationSvc service.DonationService, validate *validator.Validate) *DonationHandler {
	return &DonationHandler{donationSvc: donationSvc, validate: validate}
}

type donationPayload struct {
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	Category          string `json:"category" validate:"required,oneof=clothing food electronics furniture education medical other"`
	Quantity          int32  `json:"quantity" validate:"required,min=1"`
	Condition         string `json:"condition" validate:"required,oneof=new like_new good fair acceptable"`
	PickupAvailable   bool   `json:"pickup_available"`
	DeliveryAvailable bool   `json:"delivery_available"`
}

func (p donationPayload) toInput() service.DonationInput {
	return service.DonationInput{
		Title:             p.Title,
		Description:       p.Description,
		Category:          domain.ItemCategory(p.Category),
		Quantity:          p.Quantity,
		Condition:         domain.ItemCondition(p.Condition),
		PickupAvailable:   p.PickupAvailable,
		DeliveryAvailable: p.DeliveryAvailable,
	}
}

func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	var payload donationPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	d, err := h.donationSvc.CreateDonation(r.Context(), actor, payload.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (h *DonationHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	d, err := h.donationSvc.GetDonation(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *DonationHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	var payload donationPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	d, err := h.donationSvc.UpdateDonation(r.Context(), actor, mux.Vars(r)["id"], payload.toInput())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *DonationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	if err := h.donationSvc.DeleteDonation(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFrom(r)
	page, pageSize := pagination(r)
	filter := repository.DonationFilter{
		Status:   domain.DonationStatus(r.URL.Query().Get("status")),
		Category: domain.ItemCategory(r.URL.Query().Get("category")),
		Page:     page,
		PageSize: pageSize,
	}
	donations, total, err := h.donationSvc.ListDonations(r.Context(), actor, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: donations, Total: total})
}
