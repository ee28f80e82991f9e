package game

import "fmt"

// Player is a mark on the board, or the side to move.
type Player uint8

const (
	None Player = iota
	Circle
	Cross
)

// Maximizer reports whether p is the side trying to maximize the score.
// Circle maximizes.
func (p Player) Maximizer() bool {
	return p == Circle
}

func (p Player) Opponent() Player {
	switch p {
	case Circle:
		return Cross
	case Cross:
		return Circle
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case Circle:
		return "O"
	case Cross:
		return "X"
	default:
		return "."
	}
}

// ParsePlayer accepts "circle"/"o" and "cross"/"x".
func ParsePlayer(name string) (Player, error) {
	switch name {
	case "circle", "o", "O":
		return Circle, nil
	case "cross", "x", "X":
		return Cross, nil
	default:
		return None, fmt.Errorf("unknown player %q", name)
	}
}
