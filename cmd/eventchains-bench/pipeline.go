package main

import (
	"context"
	"fmt"

	"github.com/golang/glog"

	"github.com/katalvlaran/eventchains/bench"
	"github.com/katalvlaran/eventchains/config"
	"github.com/katalvlaran/eventchains/core"
	"github.com/katalvlaran/eventchains/dijkstra"
	"github.com/katalvlaran/eventchains/eventchain"
	"github.com/katalvlaran/eventchains/middleware"
)

// Pipeline context keys.
const (
	keyGraph  = "bench.graph"
	keyResult = "bench.case_result"
)

// pipeline runs each case of the matrix as a chain of stages:
// build-graph, self-check, tiers and, when enabled, compare.
type pipeline struct {
	cfg      config.Config
	obs      bench.Observer
	stages   *middleware.Counting
	recovery *middleware.Recovery
	logging  *middleware.Logging

	// verify is the self-check run before any timing.
	verify func(g *core.Graph, s, t core.NodeID) (dijkstra.Result, error)
}

func newPipeline(cfg config.Config, obs bench.Observer) *pipeline {
	return &pipeline{
		cfg:      cfg,
		obs:      obs,
		stages:   middleware.NewCounting(),
		recovery: middleware.NewRecovery(cfg.Backtrace),
		logging:  &middleware.Logging{Verbose: cfg.LogLevel > 0},
		verify:   bench.Verify,
	}
}

func (p *pipeline) chain(cs bench.Case) *eventchain.Chain {
	m := cs.Apply(p.cfg.Methodology)
	res := &bench.CaseResult{Case: cs}
	res.Source, res.Target = cs.Endpoints()

	graph := func(ec *eventchain.Context) (*core.Graph, error) {
		return eventchain.Value[*core.Graph](ec, keyGraph)
	}

	c := eventchain.NewChain(eventchain.WithFaultTolerance(eventchain.Strict)).
		AddEvent(eventchain.EventFunc{EventName: "build-graph", Fn: func(ec *eventchain.Context) error {
			g, err := cs.Build(p.cfg.Seed, p.cfg.MaxWeight)
			if err != nil {
				return err
			}
			st := g.Stats()
			glog.V(1).Infof("%s: %d arcs, degree %d..%d (avg %.2f)",
				cs.Name(), st.Arcs, st.MinDegree, st.MaxDegree, st.AvgDegree)
			ec.Set(keyGraph, g)
			ec.Set(keyResult, res)
			return nil
		}}).
		AddEvent(eventchain.EventFunc{EventName: "self-check", Fn: func(ec *eventchain.Context) error {
			g, err := graph(ec)
			if err != nil {
				return err
			}
			want, err := p.verify(g, res.Source, res.Target)
			if err != nil {
				return err
			}
			res.Distance = want.Distance
			return nil
		}}).
		AddEvent(eventchain.EventFunc{EventName: "tiers", Fn: func(ec *eventchain.Context) error {
			g, err := graph(ec)
			if err != nil {
				return err
			}
			res.Tiers, err = bench.RunTiers(g, res.Source, res.Target, m, p.cfg.MiddlewareCounts, p.obs)
			return err
		}})

	if p.cfg.Compare {
		c.AddEvent(eventchain.EventFunc{EventName: "compare", Fn: func(ec *eventchain.Context) error {
			g, err := graph(ec)
			if err != nil {
				return err
			}
			cmp, err := bench.Compare(g, res.Source, res.Target, m, p.obs)
			if err != nil {
				return err
			}
			res.Comparison = &cmp
			return nil
		}})
	}

	return c.Use(p.stages).Use(p.recovery).Use(p.logging)
}

// run executes one case; cancellation of ctx stops between stages.
func (p *pipeline) run(ctx context.Context, cs bench.Case) (bench.CaseResult, error) {
	ec := eventchain.NewContext()
	out := p.chain(cs).ExecuteContext(ctx, ec)
	if out.Status != eventchain.Completed {
		return bench.CaseResult{}, fmt.Errorf("case %s: %w", cs.Name(), out.Err())
	}

	res, err := eventchain.Value[*bench.CaseResult](ec, keyResult)
	if err != nil {
		return bench.CaseResult{}, fmt.Errorf("case %s: %w", cs.Name(), err)
	}

	return *res, nil
}
