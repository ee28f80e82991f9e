package game

import (
	"fmt"

	"minimax/searcher"
)

// EvaluateOutcome scores finished games only; every other position is worth 0.
func EvaluateOutcome(s searcher.State[Move]) searcher.Score {
	b, ok := s.(Board)
	if !ok {
		panic("unexpected state type")
	}
	if outcome, over := b.outcome(); over {
		return searcher.Terminal(outcome)
	}
	return searcher.Value(0)
}

// EvaluateOpenLines scores finished games by their outcome and other positions
// by how many lines each side can still complete, giving a value in [-1, 1].
func EvaluateOpenLines(s searcher.State[Move]) searcher.Score {
	b, ok := s.(Board)
	if !ok {
		panic("unexpected state type")
	}
	if outcome, over := b.outcome(); over {
		return searcher.Terminal(outcome)
	}

	open := 0
	for _, line := range lines {
		circle, cross := false, false
		for _, cell := range line {
			switch b.At(cell) {
			case Circle:
				circle = true
			case Cross:
				cross = true
			}
		}
		if !cross {
			open++
		}
		if !circle {
			open--
		}
	}
	return searcher.Value(float64(open) / float64(len(lines)))
}

// EvaluatorByName picks an evaluator for the command line.
func EvaluatorByName(name string) (searcher.Evaluate[Move], error) {
	switch name {
	case "outcome":
		return EvaluateOutcome, nil
	case "lines":
		return EvaluateOpenLines, nil
	default:
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
}

func (b Board) outcome() (searcher.Outcome, bool) {
	switch winner := b.Winner(); {
	case winner == Circle:
		return searcher.MaxWin, true
	case winner == Cross:
		return searcher.MinWin, true
	case b.Full():
		return searcher.Draw, true
	default:
		return searcher.NonTerminal, false
	}
}
