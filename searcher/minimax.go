package searcher

import (
	"context"
	"time"

	"minimax/experiments/metrics"

	"github.com/rs/zerolog/log"
)

type Option func(o *options)

type options struct {
	duration time.Duration
	maxDepth int
	pruning  bool
	metrics  metrics.Collector
}

// Minimax finds moves by iterative deepening: alpha-beta searches of depth 1,
// 2, 3, ... each running on its own goroutine until the time budget runs out,
// the depth cap is reached, or a search covers the whole remaining game.
type Minimax[M comparable] struct {
	options
	evaluate Evaluate[M]
}

func WithDuration(duration time.Duration) Option {
	return func(o *options) {
		if duration > 0 {
			o.duration = duration
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithoutPruning turns alpha-beta into a plain full-width minimax.
func WithoutPruning() Option {
	return func(o *options) {
		o.pruning = false
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = metrics.NewCollector()
	}
}

func NewMinimax[M comparable](evaluate Evaluate[M], opts ...Option) *Minimax[M] {
	if evaluate == nil {
		panic("Must specify an evaluation function")
	}
	m := &Minimax[M]{ // Default values
		options: options{
			pruning: true,
			metrics: metrics.NewDummyCollector(),
		},
		evaluate: evaluate,
	}
	for _, opt := range opts {
		opt(&m.options)
	}
	if m.duration <= 0 && m.maxDepth <= 0 {
		panic("Must specify search duration or max depth")
	}
	return m
}

// FindMove returns the move of the deepest search that produced one. The
// boolean is false when not even the depth 1 search finished in time, or when
// state has no moves at all.
func (m *Minimax[M]) FindMove(ctx context.Context, state State[M]) (M, bool, metrics.SearchMetric) {
	start := time.Now()
	m.metrics.Start(m.duration, m.maxDepth)

	var best M
	found := false
	for depth := 1; m.maxDepth <= 0 || depth <= m.maxDepth; depth++ {
		var budget time.Duration
		if m.duration > 0 {
			budget = m.duration - time.Since(start)
			if budget <= 0 {
				break
			}
		}

		result, err := m.searchWithTimeout(ctx, state, depth, budget)
		if err != nil {
			log.Debug().Int("depth", depth).Err(err).Msg("search-abandoned")
			break
		}
		if result.Found {
			best, found = result.Move, true
		}
		m.metrics.CompleteDepth(depth, result.Exhausted, result.Score.Float())

		log.Debug().
			Int("depth", depth).
			Bool("exhausted", result.Exhausted).
			Stringer("score", result.Score).
			Dur("elapsed", time.Since(start)).
			Msg("depth-complete")

		if result.Exhausted {
			break
		}
	}

	return best, found, m.metrics.Complete()
}

// searchWithTimeout runs one depth-limited search on a new goroutine and
// cancels it once budget has elapsed. A zero budget means no deadline.
func (m *Minimax[M]) searchWithTimeout(parent context.Context, state State[M], depth int, budget time.Duration) (Result[M], error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	if budget > 0 {
		timer := time.AfterFunc(budget, cancel)
		defer timer.Stop()
	}

	type outcome struct {
		result Result[M]
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		s := newAlphaBeta(ctx, m.evaluate, depth, m.pruning, m.metrics)
		result, err := s.run(state)
		done <- outcome{result: result, err: err}
	}()

	out := <-done
	return out.result, out.err
}

// FindMove searches state for at most timeout and returns the best move found.
func FindMove[M comparable](state State[M], evaluate Evaluate[M], timeout time.Duration) (M, bool) {
	if timeout <= 0 {
		var none M
		return none, false
	}
	move, ok, _ := NewMinimax(evaluate, WithDuration(timeout)).FindMove(context.Background(), state)
	return move, ok
}
