package experiments

import (
	"context"
	"fmt"
	"time"

	"minimax/agent"
	"minimax/engine"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/meta"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type Setup struct {
	Root     string // directory receiving the CSV files
	NumGames int    // per matchup
	Parallel int    // games played at once
}

func DefaultSetup() Setup {
	return Setup{
		Root:     meta.RESULTS_DIR,
		NumGames: meta.GAMES,
		Parallel: meta.PARALLEL_GAMES,
	}
}

var strengthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.SearchAgent, Timeout: time.Millisecond, Evaluator: "lines"},
	{ID: 2, Kind: metrics.SearchAgent, Timeout: 10 * time.Millisecond, Evaluator: "lines"},
	{ID: 3, Kind: metrics.SearchAgent, Timeout: 100 * time.Millisecond, Evaluator: "lines"},
	{ID: 4, Kind: metrics.SearchAgent, MaxDepth: 2, Evaluator: "outcome"},
}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.SearchAgent, Timeout: time.Millisecond, Evaluator: "lines"},
	{ID: 2, Kind: metrics.SearchAgent, Timeout: 5 * time.Millisecond, Evaluator: "lines"},
	{ID: 3, Kind: metrics.SearchAgent, Timeout: 25 * time.Millisecond, Evaluator: "lines"},
	{ID: 4, Kind: metrics.SearchAgent, Timeout: 25 * time.Millisecond, Evaluator: "lines", NoPruning: true},
	{ID: 5, Kind: metrics.SearchAgent, Timeout: 100 * time.Millisecond, Evaluator: "lines"},
}

// RunStrengthExperiment pits search agents of several budgets against the
// random baseline, each playing both sides.
func RunStrengthExperiment(ctx context.Context, setup Setup) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: meta.RANDOM_SEED}
	matchUps := lo.FlatMap(strengthConfigs, func(config metrics.AgentConfig, _ int) [][]metrics.AgentConfig {
		return [][]metrics.AgentConfig{{config, baseline}, {baseline, config}}
	})

	return runExperiment(ctx, "strength", append([]metrics.AgentConfig{baseline}, strengthConfigs...), matchUps, setup)
}

// RunDepthExperiment records how deep each time budget lets the search get,
// with every config playing itself.
func RunDepthExperiment(ctx context.Context, setup Setup) (string, error) {
	// Each matchup uses the same config for both players
	matchUps := lo.Map(depthConfigs, func(config metrics.AgentConfig, _ int) []metrics.AgentConfig {
		return []metrics.AgentConfig{config, config}
	})

	return runExperiment(ctx, "depth", depthConfigs, matchUps, setup)
}

type gameResult struct {
	matchUp int
	record  metrics.GameRecord
	moves   []metrics.MoveMetric
	winner  game.Player
}

func runExperiment(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, setup Setup) (string, error) {
	if setup.NumGames <= 0 {
		return "", fmt.Errorf("%s experiment: number of games must be positive, got %d", name, setup.NumGames)
	}
	parallel := setup.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	log.Info().Msgf("starting %s experiment with %d matchups of %d games...", name, len(matchUps), setup.NumGames)

	results := make([]gameResult, len(matchUps)*setup.NumGames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for mi, matchUp := range matchUps {
		for i := 0; i < setup.NumGames; i++ {
			slot := mi*setup.NumGames + i
			id := slot + 1
			g.Go(func() error {
				result, err := runGame(ctx, id, matchUp[0], matchUp[1])
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				result.matchUp = mi
				results[slot] = result
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("%s experiment: %w", name, err)
	}

	for mi, matchUp := range matchUps {
		games := lo.Filter(results, func(r gameResult, _ int) bool { return r.matchUp == mi })
		wins1 := len(lo.Filter(games, func(r gameResult, _ int) bool { return r.winner == game.Circle }))
		wins2 := len(lo.Filter(games, func(r gameResult, _ int) bool { return r.winner == game.Cross }))
		log.Info().Msgf("matchup %d of %d: agent%d=%d wins, agent%d=%d wins, %d draws",
			mi+1, len(matchUps), matchUp[0].ID, wins1, matchUp[1].ID, wins2, len(games)-wins1-wins2)
	}

	log.Info().Msgf("completed %s experiment", name)

	gameRecords := lo.Map(results, func(r gameResult, _ int) metrics.GameRecord { return r.record })
	moveRecords := lo.FlatMap(results, func(r gameResult, _ int) []metrics.MoveRecord {
		return lo.Map(r.moves, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
			return metrics.MoveRecord{Game: r.record.ID, MoveMetric: mm}
		})
	})

	writer, err := metrics.NewWriter(setup.Root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game with config1 as Circle and config2 as Cross.
func runGame(ctx context.Context, id int, config1, config2 metrics.AgentConfig) (gameResult, error) {
	agent1, err := agent.FromConfig(config1, id)
	if err != nil {
		return gameResult{}, err
	}
	agent2, err := agent.FromConfig(config2, id)
	if err != nil {
		return gameResult{}, err
	}

	e := engine.LocalEngine([2]agent.Agent{agent1, agent2}, game.NewBoard(game.Circle))
	e.Forfeit = true
	winner, gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return gameResult{}, err
	}

	return gameResult{
		record: metrics.GameRecord{
			ID:         id,
			Agent1:     config1.ID,
			Agent2:     config2.ID,
			GameMetric: gameMetric,
		},
		moves:  moveMetrics,
		winner: winner,
	}, nil
}
