package services

import (
	"sync"

	"github.com/dionisvl/my.traffic-lights/internal/game"
)

// Presence is the connection-scoped online state of both slots.
type Presence struct {
	P1 bool
	P2 bool
}

// PresenceTracker keeps per-game online flags in process memory, deliberately
// outside the store: a restart or reconnect must never resurrect a stale
// online flag from persisted state.
type PresenceTracker struct {
	mu    sync.RWMutex
	games map[string]Presence
}

func NewPresenceTracker() *PresenceTracker {
	return &PresenceTracker{games: make(map[string]Presence)}
}

func (t *PresenceTracker) SetOnline(gameID string, role game.Role, online bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.games[gameID]
	if role == game.RoleP1 {
		p.P1 = online
	} else {
		p.P2 = online
	}
	t.games[gameID] = p
}

// Read returns both flags; an unknown game id reads as both offline.
func (t *PresenceTracker) Read(gameID string) Presence {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.games[gameID]
}
