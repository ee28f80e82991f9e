package agent

import (
	"context"
	"errors"

	"minimax/experiments/metrics"
	"minimax/game"
)

// ErrNoMove is returned when a search agent could not settle on any move
// within its budget.
var ErrNoMove = errors.New("no move found within the search budget")

type Agent interface {
	// FindMove returns the move to play and search metrics (if collected)
	FindMove(ctx context.Context, board game.Board) (game.Move, metrics.SearchMetric, error)
}
