package app

import (
	"database/sql"

	log "github.com/sirupsen/logrus"

	"github.com/workplanner/workplanner/internal/config"
	"github.com/workplanner/workplanner/internal/event_bus"
	"github.com/workplanner/workplanner/internal/utils"
	"github.com/workplanner/workplanner/pkg/auth"
	"github.com/workplanner/workplanner/pkg/planner"
	"github.com/workplanner/workplanner/pkg/stats"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	PlannerRepo    planner.Repository
	PlannerService *planner.Service
	PlannerHandler *planner.Handler

	StatsService     *stats.StatsServiceImpl
	CsvMonthRenderer *stats.CsvMonthRendererImpl
	StatsHandler     *stats.StatsHandler

	AuthService *auth.ServiceImpl
	AuthHandler *auth.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.PlannerRepo = planner.NewRepository(db)
	deps.PlannerService = planner.NewService(deps.EventBus)
	deps.PlannerHandler = planner.NewHandler(deps.PlannerService)

	// Persistence is driven by state-update events: each replacement is
	// written through best effort, failures stay in the log.
	event_bus.SubscribeTyped[planner.StateUpdated](
		deps.EventBus,
		event_bus.PlannerStateUpdated,
		func(e event_bus.EventT[planner.StateUpdated]) error {
			if err := deps.PlannerRepo.Save(e.Context(), e.Data.State); err != nil {
				log.Errorf("failed to persist planner state: %v", err)
			}
			return nil
		},
	)

	deps.StatsService = stats.NewStatsService(deps.PlannerService)
	deps.CsvMonthRenderer = stats.NewCsvMonthRenderer()
	deps.StatsHandler = stats.NewStatsHandler(deps.StatsService, deps.CsvMonthRenderer, deps.PlannerService)

	deps.AuthService = auth.NewService(deps.Clock)
	deps.AuthHandler = auth.NewHandler(deps.AuthService, deps.PlannerService)

	return deps
}
