package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.Dir()))

	configs := []AgentConfig{
		{ID: 0, Kind: RandomAgent, Seed: 1},
		{ID: 1, Kind: SearchAgent, Timeout: 25 * time.Millisecond, Evaluator: "lines", NoPruning: true},
	}
	require.NoError(t, w.WriteAgentConfigs(configs))

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	games := []GameRecord{{
		ID: 1, Agent1: 1, Agent2: 0,
		GameMetric: GameMetric{StartingPlayer: "O", Winner: "O", StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 7},
	}}
	require.NoError(t, w.WriteGameRecords(games))

	moves := []MoveRecord{{
		Game: 1,
		MoveMetric: MoveMetric{Step: 1, Player: "O", SearchMetric: SearchMetric{
			Timeout: 25 * time.Millisecond, Depth: 9, Nodes: 1200, Cutoffs: 300, Exhausted: true, Score: 0,
		}},
	}}
	require.NoError(t, w.WriteMoveRecords(moves))

	agentRows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Len(t, agentRows, 3)
	require.Equal(t, []string{"id", "kind", "timeout", "max_depth", "evaluator", "no_pruning", "seed"}, agentRows[0])
	require.Equal(t, []string{"1", "search", "25ms", "0", "lines", "true", "0"}, agentRows[2])

	gameRows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, gameRows, 2)
	require.Equal(t, "O", gameRows[1][4])
	require.Equal(t, "7", gameRows[1][8])
	require.Equal(t, "false", gameRows[1][9])

	moveRows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moveRows, 2)
	require.Equal(t, []string{"1", "1", "O", "25ms", "0s", "9", "1200", "300", "true", "0"}, moveRows[1])
}
