package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStateRevocationWins(t *testing.T) {
	// A previously-allowed session whose allow-list record flips to
	// inactive must resolve to revoked on the next check.
	assert.Equal(t, StateAllowed, ResolveState(true, true))
	assert.Equal(t, StateRevoked, ResolveState(true, false))
}

func TestResolveStateUnverified(t *testing.T) {
	assert.Equal(t, StateUnauthenticated, ResolveState(false, true))
	assert.Equal(t, StateUnauthenticated, ResolveState(false, false))
}

func TestResolveStateNeverCachesAllowed(t *testing.T) {
	// Simulates the live allow-list query re-firing across app loads:
	// allowed, then revoked, then re-allowed. Each resolution must track
	// the current answer only.
	answers := []bool{true, false, true}
	want := []State{StateAllowed, StateRevoked, StateAllowed}
	for i, allowed := range answers {
		assert.Equal(t, want[i], ResolveState(true, allowed), "check %d", i)
	}
}
