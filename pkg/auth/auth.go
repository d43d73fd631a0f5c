package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/workplanner/workplanner/internal/utils"
)

// SessionDuration is the fixed validity of a session token, counted from its
// creation.
const SessionDuration = 7 * 24 * time.Hour

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "work-planner-session"

type Service interface {
	// StartSession creates a new token valid for SessionDuration from now.
	StartSession() string
	// IsAuthenticated reports whether token identifies an unexpired session.
	// Expired sessions are dropped on the spot.
	IsAuthenticated(token string) bool
	// ClearSession invalidates the given token.
	ClearSession(token string)
	// CheckPassword compares a candidate against the stored credential.
	// No stored credential means any candidate authenticates; this is the
	// intended first-run behavior, a password is only required once set.
	CheckPassword(candidate string, stored *string) bool
}

type ServiceImpl struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	clock    utils.Clock
}

func NewService(clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		sessions: make(map[string]time.Time),
		clock:    clock,
	}
}

func (s *ServiceImpl) StartSession() string {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = s.clock.Now().Add(SessionDuration)
	s.mu.Unlock()

	log.Debug("started new session")
	return token
}

func (s *ServiceImpl) IsAuthenticated(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[token]
	if !ok {
		return false
	}
	if s.clock.Now().After(expiry) {
		delete(s.sessions, token)
		log.Debug("session expired")
		return false
	}
	return true
}

func (s *ServiceImpl) ClearSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *ServiceImpl) CheckPassword(candidate string, stored *string) bool {
	if stored == nil {
		return true
	}
	return candidate == *stored
}
