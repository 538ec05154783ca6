package app

import (
	"net/http"
	"strings"

	"github.com/ahorro/ahorro/internal/auth"
	"github.com/ahorro/ahorro/internal/config"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// PIN gate: once a PIN is configured, API requests need a live session
	// token. Auth endpoints stay open so the user can unlock, and the
	// frontend assets are public by design.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !strings.HasPrefix(req.URL.Path, "/api/") || strings.HasPrefix(req.URL.Path, "/api/auth/") {
				next.ServeHTTP(w, req)
				return
			}

			configured, err := deps.AuthService.IsConfigured(req.Context())
			if err != nil {
				log.Errorf("failed to check pin status: %v", err)
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if !configured {
				next.ServeHTTP(w, req)
				return
			}

			token := req.Header.Get(auth.SessionHeader)
			if token == "" || !deps.AuthService.ValidateToken(token) {
				log.Debugf("rejected request to %s without valid session", req.URL.Path)
				http.Error(w, "locked", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, req)
		})
	})
}
