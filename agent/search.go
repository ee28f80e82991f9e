package agent

import (
	"context"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/searcher"
)

type searchAgent struct {
	minimax *searcher.Minimax[game.Move]
}

// NewSearchAgent returns an agent playing the moves found by minimax.
func NewSearchAgent(minimax *searcher.Minimax[game.Move]) Agent {
	return searchAgent{minimax: minimax}
}

func (a searchAgent) FindMove(ctx context.Context, board game.Board) (game.Move, metrics.SearchMetric, error) {
	move, ok, metric := a.minimax.FindMove(ctx, board)
	if !ok {
		return game.Move{}, metric, ErrNoMove
	}
	return move, metric, nil
}
