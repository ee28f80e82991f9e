package searcher

import (
	"cmp"
	"fmt"
	"math"
)

// Outcome tags a Score as either a heuristic estimate or a finished game.
type Outcome uint8

const (
	NonTerminal Outcome = iota
	MaxWin
	MinWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case MaxWin:
		return "max-win"
	case MinWin:
		return "min-win"
	case Draw:
		return "draw"
	default:
		return "non-terminal"
	}
}

// Score is the value of a position from the maximizing side's point of view.
// Terminal outcomes are ordered around every finite value: MinWin < v < MaxWin,
// and a draw counts as 0.
type Score struct {
	outcome Outcome
	value   float64
	ply     int // distance from the search root where a win was met
}

// Value returns a non-terminal heuristic score.
func Value(v float64) Score {
	return Score{outcome: NonTerminal, value: v}
}

// Terminal returns the score of a finished game.
func Terminal(o Outcome) Score {
	if o == NonTerminal {
		panic("terminal score needs a terminal outcome")
	}
	return Score{outcome: o}
}

func (s Score) Outcome() Outcome {
	return s.outcome
}

func (s Score) IsTerminal() bool {
	return s.outcome != NonTerminal
}

// Float maps the score onto the real line, with wins at ±Inf.
func (s Score) Float() float64 {
	switch s.outcome {
	case MaxWin:
		return math.Inf(1)
	case MinWin:
		return math.Inf(-1)
	case Draw:
		return 0
	default:
		return s.value
	}
}

// Compare returns -1, 0 or +1 as s is worse than, equal to or better than o
// for the maximizing side. A nearer win beats a farther one, and a farther
// loss beats a nearer one.
func (s Score) Compare(o Score) int {
	if c := cmp.Compare(s.tier(), o.tier()); c != 0 {
		return c
	}
	switch s.outcome {
	case MaxWin:
		return cmp.Compare(o.ply, s.ply)
	case MinWin:
		return cmp.Compare(s.ply, o.ply)
	}
	return cmp.Compare(s.level(), o.level())
}

func (s Score) tier() int {
	switch s.outcome {
	case MaxWin:
		return 1
	case MinWin:
		return -1
	default:
		return 0
	}
}

func (s Score) level() float64 {
	if s.outcome == Draw {
		return 0
	}
	return s.value
}

func (s Score) atPly(ply int) Score {
	if s.outcome == MaxWin || s.outcome == MinWin {
		s.ply = ply
	}
	return s
}

func (s Score) String() string {
	switch s.outcome {
	case MaxWin, MinWin:
		return fmt.Sprintf("%s@%d", s.outcome, s.ply)
	case Draw:
		return s.outcome.String()
	default:
		return fmt.Sprintf("%.4g", s.value)
	}
}

// bound is an alpha or beta bound that may be unset.
type bound struct {
	score Score
	set   bool
}

func bounded(s Score) bound {
	return bound{score: s, set: true}
}
