package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Move places the side to move's mark on a cell. Row 0 is the top row.
type Move struct {
	Row int
	Col int
}

// ParseMove reads "x y" coordinates where the bottom left cell is (1, 1).
func ParseMove(text string) (Move, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("expected two coordinates, got %d", len(fields))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Move{}, fmt.Errorf("invalid x coordinate: %w", err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid y coordinate: %w", err)
	}
	if x < 1 || x > Size || y < 1 || y > Size {
		return Move{}, fmt.Errorf("coordinates (%d, %d) are off the board", x, y)
	}
	return Move{Row: Size - y, Col: x - 1}, nil
}

// String formats the move in the same "x y" coordinates ParseMove reads.
func (m Move) String() string {
	return fmt.Sprintf("%d %d", m.Col+1, Size-m.Row)
}
