package app

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/workplanner/workplanner/internal/config"
	"github.com/workplanner/workplanner/pkg/auth"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Session gate: every API endpoint except the auth ones requires a valid
	// session cookie. The frontend is served unauthenticated, the login view
	// lives there.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !strings.HasPrefix(req.URL.Path, "/api/") || strings.HasPrefix(req.URL.Path, "/api/auth/") {
				next.ServeHTTP(w, req)
				return
			}

			cookie, err := req.Cookie(auth.SessionCookieName)
			if err != nil || !deps.AuthService.IsAuthenticated(cookie.Value) {
				log.Debugf("unauthenticated request to %s", req.URL.Path)
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, req)
		})
	})
}
