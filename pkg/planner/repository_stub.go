package planner

import (
	"context"
	"errors"
)

// StubRepository keeps the state in memory. Used by tests in this package and
// by the stats and auth packages.
type StubRepository struct {
	stored    State
	hasState  bool
	saveCount int
	failSave  bool
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) Load(ctx context.Context) (State, bool, error) {
	if !s.hasState {
		return NewState(), false, nil
	}
	return s.stored, true, nil
}

func (s *StubRepository) Save(ctx context.Context, state State) error {
	s.saveCount++
	if s.failSave {
		return errors.New("stub save failure")
	}
	s.stored = state
	s.hasState = true
	return nil
}

func (s *StubRepository) Seed(state State) {
	s.stored = state
	s.hasState = true
}

func (s *StubRepository) SaveCount() int {
	return s.saveCount
}

func (s *StubRepository) FailSaves() {
	s.failSave = true
}
