package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workplanner/workplanner/internal/utils"
)

func TestSessionExpiry(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)}
	service := NewService(clock)

	token := service.StartSession()
	require.NotEmpty(t, token)
	assert.True(t, service.IsAuthenticated(token))

	clock.Advance(6 * 24 * time.Hour)
	assert.True(t, service.IsAuthenticated(token), "session must still be valid after 6 days")

	clock.Advance(2 * 24 * time.Hour)
	assert.False(t, service.IsAuthenticated(token), "session must be expired after 8 days")

	// Expired tokens are dropped and stay invalid even if the clock moves back.
	clock.Advance(-4 * 24 * time.Hour)
	assert.False(t, service.IsAuthenticated(token))
}

func TestIsAuthenticated_UnknownToken(t *testing.T) {
	service := NewService(&utils.SystemClock{})

	assert.False(t, service.IsAuthenticated(""))
	assert.False(t, service.IsAuthenticated("no-such-token"))
}

func TestClearSession(t *testing.T) {
	service := NewService(&utils.SystemClock{})
	token := service.StartSession()
	require.True(t, service.IsAuthenticated(token))

	service.ClearSession(token)
	assert.False(t, service.IsAuthenticated(token))
}

func TestStartSession_TokensAreUnique(t *testing.T) {
	service := NewService(&utils.SystemClock{})
	assert.NotEqual(t, service.StartSession(), service.StartSession())
}

func TestCheckPassword(t *testing.T) {
	service := NewService(&utils.SystemClock{})
	stored := "Segreto"

	// No credential set: anything authenticates.
	assert.True(t, service.CheckPassword("", nil))
	assert.True(t, service.CheckPassword("whatever", nil))

	// Credential set: exact, case-sensitive match.
	assert.True(t, service.CheckPassword("Segreto", &stored))
	assert.False(t, service.CheckPassword("segreto", &stored))
	assert.False(t, service.CheckPassword("", &stored))
}
