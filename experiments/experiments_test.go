package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"minimax/experiments/metrics"
	"minimax/game"

	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows) - 1
}

func TestRunStrengthExperiment(t *testing.T) {
	setup := Setup{Root: t.TempDir(), NumGames: 1, Parallel: 4}

	dir, err := RunStrengthExperiment(context.Background(), setup)

	require.NoError(t, err)
	require.Equal(t, len(strengthConfigs)+1, countRows(t, filepath.Join(dir, "agent_configs.csv")))
	require.Equal(t, 2*len(strengthConfigs), countRows(t, filepath.Join(dir, "game_records.csv")))
	require.Greater(t, countRows(t, filepath.Join(dir, "move_records.csv")), 2*len(strengthConfigs)*4)
}

func TestRunDepthExperiment(t *testing.T) {
	setup := Setup{Root: t.TempDir(), NumGames: 1, Parallel: 2}

	dir, err := RunDepthExperiment(context.Background(), setup)

	require.NoError(t, err)
	require.Equal(t, len(depthConfigs), countRows(t, filepath.Join(dir, "game_records.csv")))
}

func TestRunExperimentRejectsEmptySetup(t *testing.T) {
	_, err := RunDepthExperiment(context.Background(), Setup{Root: t.TempDir()})
	require.Error(t, err)
}

func TestRunGame(t *testing.T) {
	searcher := metrics.AgentConfig{ID: 1, Kind: metrics.SearchAgent, MaxDepth: 9, Evaluator: "outcome"}
	random := metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: 5}

	result, err := runGame(context.Background(), 3, searcher, random)

	require.NoError(t, err)
	require.NotEqual(t, game.Cross, result.winner, "The random agent should never beat a full-depth search")
	require.Equal(t, 3, result.record.ID)
	require.Equal(t, 1, result.record.Agent1)
	require.Equal(t, 0, result.record.Agent2)
	require.Len(t, result.moves, result.record.TotalMoves)
}

func TestNoMoveIsRecordedAsForfeit(t *testing.T) {
	// A budget this small is spent before the first depth starts.
	hopeless := metrics.AgentConfig{ID: 1, Kind: metrics.SearchAgent, Timeout: time.Nanosecond, Evaluator: "lines"}
	random := metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: 2}

	result, err := runGame(context.Background(), 1, hopeless, random)
	require.NoError(t, err)
	require.Equal(t, game.Cross, result.winner)
	require.True(t, result.record.Forfeit)
	require.Equal(t, "X", result.record.Winner)

	setup := Setup{Root: t.TempDir(), NumGames: 2, Parallel: 2}
	configs := []metrics.AgentConfig{random, hopeless}
	dir, err := runExperiment(context.Background(), "forfeit", configs, [][]metrics.AgentConfig{{random, hopeless}, {hopeless, random}}, setup)

	require.NoError(t, err, "A forfeit should not abort the experiment")
	require.Equal(t, 4, countRows(t, filepath.Join(dir, "game_records.csv")))
}
