// Package planner runs the full pipeline for a scenario: sense the raw map
// from the start cell, search for a path to the goal and smooth it into a
// trajectory that stops at the edge of the sensed region.
//
// The core packages are pure and do not log; Planner adds structured zap
// logging around each stage and evaluates independent scenarios in parallel.
package planner

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/senseplan/occgrid"
	"github.com/katalvlaran/senseplan/scenario"
	"github.com/katalvlaran/senseplan/search"
	"github.com/katalvlaran/senseplan/sensing"
	"github.com/katalvlaran/senseplan/trajectory"
)

// Outcome is everything one planning run produced. All fields are read-only
// snapshots that may be handed to a renderer.
type Outcome struct {
	Scenario   scenario.Scenario
	Grid       *occgrid.Grid
	Path       []occgrid.Cell
	Cost       float64
	Expanded   int
	Trajectory *trajectory.Trajectory
}

// Planner runs scenarios. The zero value is not usable; call New.
type Planner struct {
	logger *zap.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// New returns a Planner that logs nowhere unless WithLogger is given.
func New(opts ...Option) *Planner {
	p := &Planner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Plan executes sense → search → smooth for s. An unreachable goal is
// returned as an error wrapping search.ErrUnreachable. ctx is checked
// between stages.
func (p *Planner) Plan(ctx context.Context, s scenario.Scenario) (*Outcome, error) {
	log := p.logger.With(zap.String("scenario", s.Name))
	began := time.Now()

	raw, err := s.Raw()
	if err != nil {
		return nil, err
	}
	h, err := s.HeuristicFunc()
	if err != nil {
		return nil, err
	}

	grid, err := sensing.Sense(raw, s.Start.Cell(), s.Radius)
	if err != nil {
		return nil, fmt.Errorf("planner: %s: sense: %w", s.Name, err)
	}
	log.Debug("sensed grid",
		zap.Int("width", grid.Width),
		zap.Int("height", grid.Height),
		zap.Int("known", grid.Count(occgrid.KnownFree)),
		zap.Int("unknown", grid.Count(occgrid.Unknown)),
		zap.Int("obstacles", grid.Count(occgrid.Obstacle)),
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := search.FindPath(grid, s.Start.Cell(), s.Goal.Cell(), search.WithHeuristic(h))
	if err != nil {
		log.Warn("search failed", zap.Error(err))
		return nil, fmt.Errorf("planner: %s: search: %w", s.Name, err)
	}
	log.Debug("path found",
		zap.Int("cells", len(res.Path)),
		zap.Float64("cost", res.Cost),
		zap.Int("expanded", res.Expanded),
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	traj, err := trajectory.Smooth(res.Path, grid, s.TrajectoryOptions()...)
	if err != nil {
		log.Warn("smoothing failed", zap.Error(err))
		return nil, fmt.Errorf("planner: %s: smooth: %w", s.Name, err)
	}

	fields := []zap.Field{
		zap.Int("samples", traj.Len()),
		zap.Bool("truncated", traj.Truncated),
		zap.Duration("elapsed", time.Since(began)),
	}
	if traj.Truncated {
		fields = append(fields, zap.Stringer("stop_cell", traj.StopCell))
	}
	log.Info("planned", fields...)

	return &Outcome{
		Scenario:   s,
		Grid:       grid,
		Path:       res.Path,
		Cost:       res.Cost,
		Expanded:   res.Expanded,
		Trajectory: traj,
	}, nil
}

// PlanAll plans every scenario with at most workers goroutines (runtime.NumCPU
// when workers ≤ 0). Outcomes keep input order. The first failure cancels the
// remaining work and is returned.
func (p *Planner) PlanAll(ctx context.Context, scenarios []scenario.Scenario, workers int) ([]*Outcome, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	out := make([]*Outcome, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range scenarios {
		i := i // go 1.21: per-iteration copy for the closure
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := p.Plan(ctx, scenarios[i])
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
