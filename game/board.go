package game

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"minimax/searcher"
)

const Size = 3

var (
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
)

// lines lists every row, column and diagonal as cell coordinates.
var lines = func() [][Size]Move {
	var ls [][Size]Move
	for i := 0; i < Size; i++ {
		var row, col [Size]Move
		for j := 0; j < Size; j++ {
			row[j] = Move{Row: i, Col: j}
			col[j] = Move{Row: j, Col: i}
		}
		ls = append(ls, row, col)
	}
	var diag, anti [Size]Move
	for i := 0; i < Size; i++ {
		diag[i] = Move{Row: i, Col: i}
		anti[i] = Move{Row: i, Col: Size - 1 - i}
	}
	return append(ls, diag, anti)
}()

// Board is a tic-tac-toe position. It is a value: Play returns a new board and
// leaves the receiver untouched.
type Board struct {
	cells  [Size][Size]Player
	toPlay Player
}

func NewBoard(first Player) Board {
	return Board{toPlay: first}
}

func (b Board) ToPlay() Player {
	return b.toPlay
}

func (b Board) At(m Move) Player {
	return b.cells[m.Row][m.Col]
}

// Play returns the board after the side to move marks m.
func (b Board) Play(m Move) (Board, error) {
	if b.Over() {
		return b, ErrGameOver
	}
	if m.Row < 0 || m.Row >= Size || m.Col < 0 || m.Col >= Size {
		return b, fmt.Errorf("%w: row %d col %d is off the board", ErrIllegalMove, m.Row, m.Col)
	}
	if b.cells[m.Row][m.Col] != None {
		return b, fmt.Errorf("%w: cell %s is taken", ErrIllegalMove, m)
	}
	b.cells[m.Row][m.Col] = b.toPlay
	b.toPlay = b.toPlay.Opponent()
	return b, nil
}

// LegalMoves lists the empty cells row by row, or nothing once the game is over.
func (b Board) LegalMoves() []Move {
	if b.Over() {
		return nil
	}
	moves := make([]Move, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col] == None {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

func (b Board) Successors() iter.Seq2[Move, searcher.State[Move]] {
	return func(yield func(Move, searcher.State[Move]) bool) {
		for _, move := range b.LegalMoves() {
			next := b
			next.cells[move.Row][move.Col] = b.toPlay
			next.toPlay = b.toPlay.Opponent()
			if !yield(move, next) {
				return
			}
		}
	}
}

func (b Board) MaximizingTurn() bool {
	return b.toPlay.Maximizer()
}

// Winner returns the player owning a full line, or None.
func (b Board) Winner() Player {
	for _, line := range lines {
		first := b.At(line[0])
		if first == None {
			continue
		}
		if owns(b, line, first) {
			return first
		}
	}
	return None
}

func (b Board) Full() bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col] == None {
				return false
			}
		}
	}
	return true
}

func (b Board) Over() bool {
	return b.Winner() != None || b.Full()
}

// String draws the board with the top row first.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		sb.WriteString(strconv.Itoa(Size - row))
		sb.WriteString(" ")
		for col := 0; col < Size; col++ {
			sb.WriteString(b.cells[row][col].String())
			if col < Size-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  1 2 3\n")
	return sb.String()
}

func owns(b Board, line [Size]Move, p Player) bool {
	for _, cell := range line {
		if b.At(cell) != p {
			return false
		}
	}
	return true
}

// ParseBoard builds a position from Size rows, top row first, using "O", "X"
// and "." for empty cells.
func ParseBoard(toPlay Player, rows ...string) (Board, error) {
	if len(rows) != Size {
		return Board{}, fmt.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	b := NewBoard(toPlay)
	for row, text := range rows {
		cells := strings.ReplaceAll(text, " ", "")
		if len(cells) != Size {
			return Board{}, fmt.Errorf("row %d: expected %d cells, got %q", row, Size, text)
		}
		for col, c := range cells {
			switch c {
			case 'O', 'o':
				b.cells[row][col] = Circle
			case 'X', 'x':
				b.cells[row][col] = Cross
			case '.':
			default:
				return Board{}, fmt.Errorf("row %d: unknown cell %q", row, c)
			}
		}
	}
	return b, nil
}
