package app

import (
	"github.com/gorilla/mux"

	"github.com/workplanner/workplanner/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Calendar
	r.HandleFunc("/api/calendar/month", deps.PlannerHandler.GetMonth).Queries("year", "{year}", "month", "{month}").Methods("GET")
	r.HandleFunc("/api/calendar/day/{date}", deps.PlannerHandler.SetDay).Methods("PUT")
	r.HandleFunc("/api/calendar/day/{date}", deps.PlannerHandler.ClearDay).Methods("DELETE")
	r.HandleFunc("/api/calendar/apply-rules", deps.PlannerHandler.ApplyRules).Queries("year", "{year}", "month", "{month}").Methods("POST")

	// Weekly rules
	r.HandleFunc("/api/rules", deps.PlannerHandler.GetRules).Methods("GET")
	r.HandleFunc("/api/rules", deps.PlannerHandler.PutRule).Methods("PUT")
	r.HandleFunc("/api/rules/{dayOfWeek}", deps.PlannerHandler.DeleteRule).Methods("DELETE")

	// Custom holidays
	r.HandleFunc("/api/holidays/custom", deps.PlannerHandler.GetCustomHolidays).Methods("GET")
	r.HandleFunc("/api/holidays/custom", deps.PlannerHandler.AddCustomHoliday).Methods("POST")
	r.HandleFunc("/api/holidays/custom/{id}", deps.PlannerHandler.DeleteCustomHoliday).Methods("DELETE")

	// Stats
	r.HandleFunc("/api/stats", deps.StatsHandler.GetStats).Queries("year", "{year}", "month", "{month}").Methods("GET")
	r.HandleFunc("/api/stats/export", deps.StatsHandler.ExportMonth).Queries("year", "{year}", "month", "{month}").Methods("GET")

	// Auth
	r.HandleFunc("/api/auth/login", deps.AuthHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/session", deps.AuthHandler.SessionStatus).Methods("GET")
	r.HandleFunc("/api/auth/session", deps.AuthHandler.Logout).Methods("DELETE")
	r.HandleFunc("/api/auth/password", deps.AuthHandler.SetPassword).Methods("PUT")
}
