package metrics

import "time"

const (
	SearchAgent = "search"
	RandomAgent = "random"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID        int
	Kind      string // SearchAgent or RandomAgent
	Timeout   time.Duration
	MaxDepth  int
	Evaluator string
	NoPruning bool
	Seed      uint64
}
