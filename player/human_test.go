package player

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"minimax/game"

	"github.com/stretchr/testify/require"
)

func TestHumanRetriesUntilLegal(t *testing.T) {
	board, err := game.ParseBoard(game.Cross,
		". . .",
		". . .",
		"O . .",
	)
	require.NoError(t, err)
	var out bytes.Buffer
	h := NewHuman(strings.NewReader("hello\n1 1\n4 4\n2 1\n"), &out)

	move, _, err := h.FindMove(context.Background(), board)

	require.NoError(t, err)
	require.Equal(t, game.Move{Row: 2, Col: 1}, move)
	require.Contains(t, out.String(), "Play a move: x y, where bottom left is (1, 1)")
	require.Contains(t, out.String(), "Cell 1 1 is taken")
	require.Equal(t, 2, strings.Count(out.String(), "Enter a valid move"))
}

func TestHumanEndOfInput(t *testing.T) {
	h := NewHuman(strings.NewReader("5 5\n"), io.Discard)

	_, _, err := h.FindMove(context.Background(), game.NewBoard(game.Circle))

	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestHumanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := NewHuman(strings.NewReader("1 1\n"), io.Discard)

	_, _, err := h.FindMove(ctx, game.NewBoard(game.Circle))

	require.ErrorIs(t, err, context.Canceled)
}
