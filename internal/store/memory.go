package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dionisvl/my.traffic-lights/internal/game"
)

// MemoryStore keeps games in process memory. Default backend when no
// database is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]game.Game
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[string]game.Game)}
}

func (s *MemoryStore) Get(id string) (game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return game.Game{}, errNotFound()
	}
	return g, nil
}

func (s *MemoryStore) Put(g game.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g
	return nil
}

func (s *MemoryStore) Create(questions []string) (game.Game, error) {
	g, err := game.NewGame(uuid.NewString(), questions)
	if err != nil {
		return game.Game{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g
	return g, nil
}
