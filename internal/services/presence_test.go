package services

import (
	"testing"

	"github.com/dionisvl/my.traffic-lights/internal/game"
)

func TestPresenceUnknownGameReadsOffline(t *testing.T) {
	tracker := NewPresenceTracker()
	if p := tracker.Read("missing"); p.P1 || p.P2 {
		t.Errorf("presence = %+v, want both offline", p)
	}
}

func TestPresenceLastWriteWins(t *testing.T) {
	tracker := NewPresenceTracker()

	tracker.SetOnline("g1", game.RoleP1, true)
	tracker.SetOnline("g1", game.RoleP2, true)
	tracker.SetOnline("g1", game.RoleP1, false)
	tracker.SetOnline("g1", game.RoleP1, false)

	p := tracker.Read("g1")
	if p.P1 {
		t.Error("p1 online after going offline")
	}
	if !p.P2 {
		t.Error("p2 offline, want online")
	}

	// Other games are untouched.
	if p := tracker.Read("g2"); p.P1 || p.P2 {
		t.Errorf("g2 presence = %+v, want both offline", p)
	}
}
