package searcher

import "iter"

// State is a position in a two-player zero-sum game. States are immutable:
// successors are fresh values and producing them never changes the receiver.
type State[M comparable] interface {
	// Successors yields every legal (move, next state) pair in a stable order.
	Successors() iter.Seq2[M, State[M]]
	MaximizingTurn() bool
}

// Evaluate scores a state for the maximizing side. It must be pure; the same
// state may be evaluated many times across depths.
type Evaluate[M comparable] func(State[M]) Score
