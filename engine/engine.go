package engine

import (
	"context"

	"minimax/experiments/metrics"
	"minimax/game"
)

// MaxMoves bounds a game; a tic-tac-toe board fills up after this many moves.
const MaxMoves = game.Size * game.Size

type Engine interface {
	// Run plays a game till it is over and returns the winner (game.None on a draw)
	Run(ctx context.Context) (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
