package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(time.Second, 4)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.AddNode()
			}
			c.AddCutoff()
		}()
	}
	wg.Wait()
	c.CompleteDepth(1, false, 0.5)
	c.CompleteDepth(2, true, -0.25)

	metric := c.Complete()
	require.Equal(t, time.Second, metric.Timeout)
	require.Equal(t, 4, metric.MaxDepth)
	require.Equal(t, int64(800), metric.Nodes)
	require.Equal(t, int64(8), metric.Cutoffs)
	require.Equal(t, 2, metric.Depth)
	require.True(t, metric.Exhausted)
	require.Equal(t, -0.25, metric.Score)

	c.Start(0, 1)
	require.Zero(t, c.Complete().Nodes, "Start should reset the counters")
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(time.Second, 4)
	c.AddNode()
	c.CompleteDepth(3, true, 1)

	require.Equal(t, SearchMetric{}, c.Complete())
}
