package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"minimax/game"

	"github.com/stretchr/testify/require"
)

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		text string
		want time.Duration
	}{
		{text: "0.2", want: 200 * time.Millisecond},
		{text: "1", want: time.Second},
		{text: " 2.5 ", want: 2500 * time.Millisecond},
		{text: "1e-3", want: time.Millisecond},
	}
	for _, tt := range tests {
		got, err := parseTimeout(tt.text)
		require.NoError(t, err, tt.text)
		require.Equal(t, tt.want, got, tt.text)
	}

	for _, text := range []string{"", "abc", "0", "-1", "NaN", "Inf", "1e-12"} {
		_, err := parseTimeout(text)
		require.Error(t, err, "%q should be rejected", text)
	}

	for _, text := range []string{"1e10", "9.3e9", "1e300"} {
		_, err := parseTimeout(text)
		require.ErrorContains(t, err, "too large", "%q overflows a time.Duration", text)
	}
	_, err := parseTimeout("1e-12")
	require.ErrorContains(t, err, "too small")
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig("play", "0.5", "x", "outcome", "strength", 3, "out")
	require.NoError(t, err)
	require.Equal(t, 500*time.Millisecond, cfg.timeout)
	require.Equal(t, game.Cross, cfg.side)
	require.Equal(t, "outcome", cfg.evaluator)

	_, err = parseConfig("watch", "0.5", "o", "lines", "strength", 3, "out")
	require.Error(t, err)
	_, err = parseConfig("play", "soon", "o", "lines", "strength", 3, "out")
	require.Error(t, err)
	_, err = parseConfig("play", "0.5", "y", "lines", "strength", 3, "out")
	require.Error(t, err)
	_, err = parseConfig("play", "0.5", "o", "material", "strength", 3, "out")
	require.Error(t, err)
	_, err = parseConfig("experiment", "0.5", "o", "lines", "speed", 3, "out")
	require.Error(t, err)
	_, err = parseConfig("experiment", "0.5", "o", "lines", "depth", 0, "out")
	require.Error(t, err)

	_, err = parseConfig("play", "0.5", "o", "lines", "speed", 0, "out")
	require.NoError(t, err, "Experiment flags only matter in experiment mode")
}

func TestPlayScripted(t *testing.T) {
	cfg, err := parseConfig("play", "1", "circle", "outcome", "strength", 1, "")
	require.NoError(t, err)
	// Every cell in turn; cells the machine already took are refused and the
	// next line is read.
	in := strings.NewReader("2 2\n1 1\n2 1\n3 1\n1 2\n3 2\n1 3\n2 3\n3 3\n")
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), cfg, in, &out))

	text := out.String()
	require.Contains(t, text, "Machine played")
	require.True(t, strings.Contains(text, "Draw!") || strings.Contains(text, "You lost!"),
		"The machine should not lose: %s", text)
}

func TestSelfPlay(t *testing.T) {
	cfg, err := parseConfig("selfplay", "1", "circle", "outcome", "strength", 1, "")
	require.NoError(t, err)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), cfg, strings.NewReader(""), &out))

	require.Contains(t, out.String(), "Draw after 9 moves")
}
