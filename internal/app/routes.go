package app

import (
	"github.com/ahorro/ahorro/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Savings goals
	r.HandleFunc("/api/goal", deps.GoalHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/goal", deps.GoalHandler.Create).Methods("POST")
	r.HandleFunc("/api/goal/{goalId}", deps.GoalHandler.Update).Methods("PUT")
	r.HandleFunc("/api/goal/{goalId}", deps.GoalHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/goal/{goalId}/projection", deps.GoalHandler.SetProjection).Methods("PUT")
	r.HandleFunc("/api/goal/{goalId}/contribution", deps.GoalHandler.Contribute).Methods("POST")

	// Scheduled payments
	r.HandleFunc("/api/payment", deps.PaymentHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/payment", deps.PaymentHandler.Create).Methods("POST")
	r.HandleFunc("/api/payment/{paymentId}", deps.PaymentHandler.Update).Methods("PUT")
	r.HandleFunc("/api/payment/{paymentId}", deps.PaymentHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/payment/{paymentId}/contribution", deps.PaymentHandler.Contribute).Methods("POST")

	// Wishlist
	r.HandleFunc("/api/wishlist", deps.WishlistHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/wishlist", deps.WishlistHandler.Create).Methods("POST")
	r.HandleFunc("/api/wishlist/{itemId}", deps.WishlistHandler.Update).Methods("PUT")
	r.HandleFunc("/api/wishlist/{itemId}", deps.WishlistHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/wishlist/{itemId}/conversion", deps.WishlistHandler.Convert).Methods("POST")

	// Dashboard
	r.HandleFunc("/api/dashboard/upcoming", deps.DashboardHandler.GetUpcoming).Methods("GET")
	r.HandleFunc("/api/dashboard/calendar", deps.DashboardHandler.GetCalendar).Methods("GET")

	// Planning defaults
	r.HandleFunc("/api/planning/defaults", deps.GoalHandler.PlanningDefaults).Methods("GET")

	// PIN gate
	r.HandleFunc("/api/auth/pin", deps.AuthHandler.Status).Methods("GET")
	r.HandleFunc("/api/auth/pin", deps.AuthHandler.SetPin).Methods("POST")
	r.HandleFunc("/api/auth/pin", deps.AuthHandler.ChangePin).Methods("PUT")
	r.HandleFunc("/api/auth/unlock", deps.AuthHandler.Unlock).Methods("POST")
	r.HandleFunc("/api/auth/lock", deps.AuthHandler.Lock).Methods("POST")
}
