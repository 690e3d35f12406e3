package store

import "github.com/dionisvl/my.traffic-lights/internal/game"

// Store persists full game snapshots keyed by id. Put is a full-state
// overwrite: the coordinator always supplies the complete post-transition
// game, so last writer wins per id.
type Store interface {
	Get(id string) (game.Game, error)
	Put(g game.Game) error
	Create(questions []string) (game.Game, error)
}

func errNotFound() error {
	return game.NewError(game.CodeNotFound, "game not found")
}
