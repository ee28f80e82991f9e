package player

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"minimax/experiments/metrics"
	"minimax/game"

	"github.com/samber/lo"
)

// Human asks a person for moves on a text console.
type Human struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewHuman creates a Human reading moves from in and writing prompts to out.
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// FindMove shows the board and keeps prompting until a legal move is entered.
func (h *Human) FindMove(ctx context.Context, board game.Board) (game.Move, metrics.SearchMetric, error) {
	legal := board.LegalMoves()

	fmt.Fprint(h.out, board)
	fmt.Fprintln(h.out, "Play a move: x y, where bottom left is (1, 1)")
	for {
		if err := ctx.Err(); err != nil {
			return game.Move{}, metrics.SearchMetric{}, err
		}
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Move{}, metrics.SearchMetric{}, io.ErrUnexpectedEOF
		}

		move, err := game.ParseMove(h.scanner.Text())
		if err != nil {
			fmt.Fprintf(h.out, "Enter a valid move (%v)\n", err)
			continue
		}
		if !lo.Contains(legal, move) {
			fmt.Fprintf(h.out, "Cell %s is taken, pick another\n", move)
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}
