package metrics

import (
	"math"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Timeout   time.Duration
	MaxDepth  int
	Duration  time.Duration
	Depth     int // deepest depth whose attempt returned
	Nodes     int64
	Cutoffs   int64
	Exhausted bool
	Score     float64
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // empty on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Forfeit        bool // the loser found no move within its budget
}

type Collector interface {
	Start(timeout time.Duration, maxDepth int)
	AddNode()
	AddCutoff()
	CompleteDepth(depth int, exhausted bool, score float64)
	Complete() SearchMetric
}

type collector struct {
	timeout   time.Duration
	maxDepth  int
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	depth     atomic.Int32
	exhausted atomic.Bool
	score     atomic.Uint64 // float64 bits
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(timeout time.Duration, maxDepth int) {
	m.startTime = time.Now()
	m.timeout = timeout
	m.maxDepth = maxDepth
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.depth.Store(0)
	m.exhausted.Store(false)
	m.score.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) CompleteDepth(depth int, exhausted bool, score float64) {
	m.depth.Store(int32(depth))
	m.exhausted.Store(exhausted)
	m.score.Store(math.Float64bits(score))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Timeout:   m.timeout,
		MaxDepth:  m.maxDepth,
		Duration:  time.Since(m.startTime),
		Depth:     int(m.depth.Load()),
		Nodes:     m.nodes.Load(),
		Cutoffs:   m.cutoffs.Load(),
		Exhausted: m.exhausted.Load(),
		Score:     math.Float64frombits(m.score.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(timeout time.Duration, maxDepth int)               {}
func (m *dummyCollector) AddNode()                                               {}
func (m *dummyCollector) AddCutoff()                                             {}
func (m *dummyCollector) CompleteDepth(depth int, exhausted bool, score float64) {}
func (m *dummyCollector) Complete() SearchMetric                                 { return SearchMetric{} }
