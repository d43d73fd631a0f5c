package event_bus

// Event types published by the application.
const (
	// PlannerStateUpdated is published after every planner state replacement.
	// Payload: planner.StateUpdated.
	PlannerStateUpdated EventType = "planner.state.updated"
)
