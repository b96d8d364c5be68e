package http

import (
	"database/sql"
	"net/http"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/security"
	"givehope-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Services bundles everything the router needs.
type Services struct {
	Auth     service.AuthService
	Donation service.DonationService
	Request  service.RequestService
	Admin    service.AdminService
	Match    service.MatchService
	Message  service.MessageService
	Feedback service.FeedbackService
}

// NewRouter wires all handlers under /api/v1. Auth endpoints, the public
// feedback wall and /healthz are open; everything else requires a bearer
// token, and admin routes additionally require the ngo_admin role.
func NewRouter(svcs Services, tokens security.TokenManager, db *sql.DB) *mux.Router {
	validate := validator.New()

	authHandler := NewAuthHandler(svcs.Auth, validate)
	donationHandler := NewDonationHandler(svcs.Donation, validate)
	requestHandler := NewRequestHandler(svcs.Request, validate)
	adminHandler := NewAdminHandler(svcs.Admin)
	matchHandler := NewMatchHandler(svcs.Match, validate)
	messageHandler := NewMessageHandler(svcs.Message, validate)
	feedbackHandler := NewFeedbackHandler(svcs.Feedback, validate)
	authMw := NewAuthMiddleware(tokens)

	router := mux.NewRouter()
	router.Use(RequestLogger)
	router.HandleFunc("/healthz", healthCheck(db)).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")
	api.HandleFunc("/feedback", feedbackHandler.ListPublic).Methods("GET")

	// Authenticated
	authed := api.NewRoute().Subrouter()
	authed.Use(authMw.Authenticate)

	authed.HandleFunc("/donations", donationHandler.Create).Methods("POST")
	authed.HandleFunc("/donations", donationHandler.List).Methods("GET")
	authed.HandleFunc("/donations/{id}", donationHandler.Get).Methods("GET")
	authed.HandleFunc("/donations/{id}", donationHandler.Update).Methods("PUT")
	authed.HandleFunc("/donations/{id}", donationHandler.Delete).Methods("DELETE")

	authed.HandleFunc("/requests", requestHandler.Create).Methods("POST")
	authed.HandleFunc("/requests", requestHandler.List).Methods("GET")
	authed.HandleFunc("/requests/{id}", requestHandler.Get).Methods("GET")
	authed.HandleFunc("/requests/{id}", requestHandler.Update).Methods("PUT")
	authed.HandleFunc("/requests/{id}", requestHandler.Delete).Methods("DELETE")

	authed.HandleFunc("/matches", matchHandler.List).Methods("GET")
	authed.HandleFunc("/matches/{id}", matchHandler.Get).Methods("GET")

	authed.HandleFunc("/messages", messageHandler.Send).Methods("POST")
	authed.HandleFunc("/messages", messageHandler.Inbox).Methods("GET")
	authed.HandleFunc("/messages/sent", messageHandler.Sent).Methods("GET")
	authed.HandleFunc("/messages/{id}/read", messageHandler.MarkAsRead).Methods("POST")

	authed.HandleFunc("/feedback", feedbackHandler.Submit).Methods("POST")

	// NGO admin only
	admin := authed.NewRoute().Subrouter()
	admin.Use(RequireRole(domain.RoleNGOAdmin))

	admin.HandleFunc("/admin/approvals", adminHandler.PendingApprovals).Methods("GET")
	admin.HandleFunc("/admin/pool", adminHandler.ApprovedPool).Methods("GET")
	admin.HandleFunc("/admin/stats", adminHandler.Statistics).Methods("GET")
	admin.HandleFunc("/admin/donations/{id}/approve", adminHandler.ApproveDonation).Methods("POST")
	admin.HandleFunc("/admin/donations/{id}/reject", adminHandler.RejectDonation).Methods("POST")
	admin.HandleFunc("/admin/requests/{id}/approve", adminHandler.ApproveRequest).Methods("POST")
	admin.HandleFunc("/admin/requests/{id}/reject", adminHandler.RejectRequest).Methods("POST")

	admin.HandleFunc("/matches", matchHandler.Create).Methods("POST")
	admin.HandleFunc("/matches/{id}/delivery", matchHandler.AdvanceDelivery).Methods("POST")
	admin.HandleFunc("/matches/{id}/cancel", matchHandler.Cancel).Methods("POST")

	return router
}

func healthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "down"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
