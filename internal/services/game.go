package services

import (
	"github.com/dionisvl/my.traffic-lights/internal/game"
	"github.com/dionisvl/my.traffic-lights/internal/store"
)

// GameService serializes commands per game id, applies the pure transitions
// against the stored state and decides which events the transport fans out.
// Nothing is persisted and nothing is broadcast when a command is rejected.
type GameService struct {
	store    store.Store
	presence *PresenceTracker
	locks    *gameLocks
}

func NewGameService(st store.Store, presence *PresenceTracker) *GameService {
	return &GameService{store: st, presence: presence, locks: newGameLocks()}
}

func (s *GameService) Create(questions []string) (game.Game, error) {
	return s.store.Create(questions)
}

// Snapshot merges the volatile presence flags onto the persisted state at
// read time.
func (s *GameService) Snapshot(gameID string) (game.Snapshot, error) {
	g, err := s.store.Get(gameID)
	if err != nil {
		return game.Snapshot{}, err
	}
	p := s.presence.Read(gameID)
	g.Players.P1.Online = p.P1
	g.Players.P2.Online = p.P2
	return game.ToSnapshot(g), nil
}

func (s *GameService) Join(gameID, playerID string) (game.Role, []Event, error) {
	mu := s.locks.get(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.store.Get(gameID)
	if err != nil {
		return "", nil, err
	}
	next, role, err := game.Join(g, playerID)
	if err != nil {
		return "", nil, err
	}
	if err := s.store.Put(next); err != nil {
		return "", nil, err
	}
	s.presence.SetOnline(gameID, role, true)
	return role, joinEvents(role), nil
}

func (s *GameService) Start(gameID string, by game.Role) ([]Event, error) {
	mu := s.locks.get(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.store.Get(gameID)
	if err != nil {
		return nil, err
	}
	next, err := game.Start(g, by)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(next); err != nil {
		return nil, err
	}
	return startEvents(), nil
}

func (s *GameService) ChooseAnswer(gameID string, by game.Role, questionIndex int, answer game.AnswerColor) ([]Event, error) {
	mu := s.locks.get(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.store.Get(gameID)
	if err != nil {
		return nil, err
	}
	next, err := game.ChooseAnswer(g, by, questionIndex, answer)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(next); err != nil {
		return nil, err
	}
	return answerEvents(questionIndex), nil
}

func (s *GameService) SubmitComment(gameID string, by game.Role, questionIndex int, comment string) ([]Event, error) {
	mu := s.locks.get(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.store.Get(gameID)
	if err != nil {
		return nil, err
	}
	next, err := game.SubmitComment(g, by, questionIndex, comment)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(next); err != nil {
		return nil, err
	}
	return commentEvents(questionIndex, by), nil
}

// SetReady applies the readiness change and reports, through the returned
// events, whether the pair actually advanced. The advancement check runs on
// the post-transition state under the game's lock, so two near-simultaneous
// ready commands can never both observe the other side as not yet ready.
func (s *GameService) SetReady(gameID string, by game.Role, questionIndex int, ready bool) ([]Event, error) {
	mu := s.locks.get(gameID)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.store.Get(gameID)
	if err != nil {
		return nil, err
	}
	next, err := game.SetReady(g, by, questionIndex, ready)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(next); err != nil {
		return nil, err
	}
	return readyEvents(next, questionIndex, by, ready), nil
}

// Disconnect flips the role offline. Connection teardown only touches the
// presence tracker, never the stored game, and never blocks on the other
// player.
func (s *GameService) Disconnect(gameID string, role game.Role) []Event {
	s.presence.SetOnline(gameID, role, false)
	return disconnectEvents(role)
}
