package searcher

import (
	"context"

	"minimax/experiments/metrics"
)

// Result is the outcome of one depth-limited search.
type Result[M comparable] struct {
	Move  M
	Found bool // false when the root has no successors or maxDepth is 0
	// Exhausted reports that no depth cutoff happened anywhere in the explored
	// tree, so a deeper search cannot change the answer.
	Exhausted bool
	Score     Score
}

// Search runs a single alpha-beta search of state down to maxDepth plies. It
// returns ctx.Err() as soon as it notices ctx is done, with no result.
func Search[M comparable](ctx context.Context, state State[M], evaluate Evaluate[M], maxDepth int) (Result[M], error) {
	s := newAlphaBeta(ctx, evaluate, maxDepth, true, metrics.NewDummyCollector())
	return s.run(state)
}

type alphaBeta[M comparable] struct {
	ctx       context.Context
	evaluate  Evaluate[M]
	maxDepth  int
	pruning   bool
	metrics   metrics.Collector
	exhausted bool
	best      M
	found     bool
}

func newAlphaBeta[M comparable](ctx context.Context, evaluate Evaluate[M], maxDepth int, pruning bool, collector metrics.Collector) *alphaBeta[M] {
	return &alphaBeta[M]{
		ctx:       ctx,
		evaluate:  evaluate,
		maxDepth:  maxDepth,
		pruning:   pruning,
		metrics:   collector,
		exhausted: true,
	}
}

func (s *alphaBeta[M]) run(root State[M]) (Result[M], error) {
	score, err := s.visit(root, 0, bound{}, bound{})
	if err != nil {
		return Result[M]{}, err
	}
	return Result[M]{
		Move:      s.best,
		Found:     s.found,
		Exhausted: s.exhausted,
		Score:     score,
	}, nil
}

func (s *alphaBeta[M]) visit(state State[M], depth int, alpha, beta bound) (Score, error) {
	if err := s.ctx.Err(); err != nil {
		return Score{}, err
	}
	s.metrics.AddNode()

	score := s.evaluate(state)
	if score.IsTerminal() {
		return score.atPly(depth), nil
	}
	if depth >= s.maxDepth {
		s.exhausted = false
		return score, nil
	}

	maximizing := state.MaximizingTurn()
	var best bound
	for move, next := range state.Successors() {
		child, err := s.visit(next, depth+1, alpha, beta)
		if err != nil {
			return Score{}, err
		}

		// Strict comparison: the first move reaching the best score keeps it.
		if best.set && !improves(maximizing, child, best.score) {
			continue
		}
		if depth == 0 {
			s.best, s.found = move, true
		}
		if s.pruning && cuts(maximizing, child, alpha, beta) {
			s.metrics.AddCutoff()
			return child, nil
		}

		best = bounded(child)
		if maximizing {
			if !alpha.set || child.Compare(alpha.score) > 0 {
				alpha = best
			}
		} else {
			if !beta.set || child.Compare(beta.score) < 0 {
				beta = best
			}
		}
	}

	if !best.set { // no successors on a non-terminal position
		return score, nil
	}
	return best.score, nil
}

func improves(maximizing bool, score, best Score) bool {
	if maximizing {
		return score.Compare(best) > 0
	}
	return score.Compare(best) < 0
}

// cuts reports whether the remaining siblings can no longer matter to an
// ancestor: a beta cutoff at a maximizing node, an alpha cutoff at a
// minimizing one.
func cuts(maximizing bool, score Score, alpha, beta bound) bool {
	if maximizing {
		return beta.set && score.Compare(beta.score) >= 0
	}
	return alpha.set && score.Compare(alpha.score) <= 0
}
