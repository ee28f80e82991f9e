package agent

import (
	"fmt"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/searcher"
)

// DefaultEvaluator is used by search agents whose config names none.
const DefaultEvaluator = "lines"

// FromConfig builds the agent described by config. Random agents are seeded
// with config.Seed+game so that every game of an experiment differs.
func FromConfig(config metrics.AgentConfig, gameID int) (Agent, error) {
	switch config.Kind {
	case metrics.RandomAgent:
		return NewRandomAgent(config.Seed + uint64(gameID)), nil
	case metrics.SearchAgent, "":
		minimax, err := createMinimax(config)
		if err != nil {
			return nil, err
		}
		return NewSearchAgent(minimax), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func createMinimax(config metrics.AgentConfig) (*searcher.Minimax[game.Move], error) {
	if config.Timeout <= 0 && config.MaxDepth <= 0 {
		return nil, fmt.Errorf("agent %d: needs a timeout or a max depth", config.ID)
	}
	name := config.Evaluator
	if name == "" {
		name = DefaultEvaluator
	}
	evaluate, err := game.EvaluatorByName(name)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}

	options := []searcher.Option{}

	if config.Timeout > 0 {
		options = append(options, searcher.WithDuration(config.Timeout))
	}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}
	if config.NoPruning {
		options = append(options, searcher.WithoutPruning())
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMinimax(evaluate, options...), nil
}
