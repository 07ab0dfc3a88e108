package baseline

import (
	"fmt"
	"time"

	"github.com/katalvlaran/eventchains/core"
	"github.com/katalvlaran/eventchains/dijkstra"
)

// Timing is the measured duration of one step.
type Timing struct {
	Step     string
	Duration time.Duration
}

// ManualLog is the hand-rolled equivalent of logging and timing middleware.
type ManualLog struct {
	Timings []Timing
	Lines   []string
}

// Record appends a timing entry.
func (l *ManualLog) Record(step string, d time.Duration) {
	l.Timings = append(l.Timings, Timing{Step: step, Duration: d})
}

// Log appends a line.
func (l *ManualLog) Log(line string) {
	l.Lines = append(l.Lines, line)
}

// Duration returns the recorded duration of step, or 0 when absent.
func (l *ManualLog) Duration(step string) time.Duration {
	for _, t := range l.Timings {
		if t.Step == step {
			return t.Duration
		}
	}

	return 0
}

// Tier4 runs Dijkstra with per-step timing always recorded and log lines
// appended when logging is true. Source and target must be vertices of g.
func Tier4(g *core.Graph, source, target core.NodeID, logging bool) (dijkstra.Result, *ManualLog) {
	log := &ManualLog{
		Timings: make([]Timing, 0, 4),
	}
	begin := func(step string) time.Time {
		if logging {
			log.Log("▶ " + step + " starting")
		}

		return time.Now()
	}
	end := func(step string, start time.Time) {
		d := time.Since(start)
		log.Record(step, d)
		if logging {
			log.Log(fmt.Sprintf("  ✓ %s completed (%dμs)", step, d.Microseconds()))
		}
	}

	start := begin(StepInitializeState)
	st := dijkstra.NewState(g.NodeCount(), source)
	end(StepInitializeState, start)

	start = begin(StepInitializePriorityQueue)
	pq := dijkstra.NewPriorityQueue(g.NodeCount())
	pq.Push(dijkstra.Item{Node: source, Distance: 0})
	end(StepInitializePriorityQueue, start)

	start = begin(StepProcessAllNodes)
	for {
		it, ok := pq.Pop()
		if !ok {
			break
		}
		st.Settle(g, pq, it)
	}
	end(StepProcessAllNodes, start)

	start = begin(StepFinalizeResult)
	res := dijkstra.Reconstruct(st, source, target)
	end(StepFinalizeResult, start)

	return res, log
}
