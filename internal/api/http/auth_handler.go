package http

import (
	"net/http"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

// AuthHandler serves registration, login and token refresh.
type AuthHandler struct {
	authSvc  service.AuthService
	validate *validator.Validate
}

func NewAuthHandler(authSvc service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, validate: validate}
}

type registerPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=donor recipient ngo_admin"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

type authResponse struct {
	User   *domain.User       `json:"user"`
	Tokens *service.TokenPair `json:"tokens"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload registerPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	user, tokens, err := h.authSvc.Register(r.Context(), service.RegisterInput{
		Email:    payload.Email,
		Password: payload.Password,
		FullName: payload.FullName,
		Role:     domain.Role(payload.Role),
		Phone:    payload.Phone,
		City:     payload.City,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{User: user, Tokens: tokens})
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	user, tokens, err := h.authSvc.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{User: user, Tokens: tokens})
}

type refreshPayload struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var payload refreshPayload
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeError(w, err)
		return
	}

	tokens, err := h.authSvc.Refresh(r.Context(), payload.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokens)
}
