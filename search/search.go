// Package search implements a weighted best-first (A*-style) path search on
// sensed occupancy grids.
//
// The search orders its frontier by cost_so_far + h(node, goal), updates a
// node whenever a strictly cheaper route is found and stops as soon as the
// goal is popped. It is not Jump Point Search: every 8-connected neighbor is
// considered and no straight-line jumping or pruning takes place.
//
// Notes on implementation choices:
//
//   - Only Obstacle cells block movement; Unknown cells are traversable.
//   - A diagonal move is rejected when either orthogonal corner cell is an Obstacle.
//   - Ties on priority are broken by insertion order (FIFO), never by coordinates.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries whose cost no longer matches the best-known cost.
//   - There is no closed set, so a node improved after expansion is expanded
//     again. This keeps results stable under inconsistent heuristics.
//   - All state lives in a runner owned by one FindPath call.
package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/senseplan/occgrid"
)

// FindPath searches g for a least-cost route from start to goal.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must be in bounds (ErrStartOutOfBounds) and not an Obstacle (ErrStartBlocked).
//  3. goal must be in bounds (ErrGoalOutOfBounds) and not an Obstacle (ErrGoalBlocked).
//
// When the frontier empties without reaching goal, FindPath returns
// ErrUnreachable and a nil Result; it never fabricates a partial path.
//
// Complexity:
//
//   - Time:  O(N log N) where N = W×H (each relaxation pushes one heap item).
//   - Space: O(N)
func FindPath(g *occgrid.Grid, start, goal occgrid.Cell, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = Manhattan
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if g.IsObstacle(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}
	if g.IsObstacle(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalBlocked, goal)
	}

	r := newRunner(g, goal, cfg)
	r.init(start)
	found, err := r.process()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %v → %v after %d expansions", ErrUnreachable, start, goal, r.expanded)
	}

	return &Result{
		Path:     r.backtrack(start),
		Cost:     r.cost[r.index(goal)],
		Expanded: r.expanded,
	}, nil
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	g        *occgrid.Grid // read-only within the search
	goal     occgrid.Cell
	options  Options
	offsets  [][2]int
	cost     []float64 // best-known cost per row-major index; +Inf if untouched
	prev     []int     // predecessor index; -1 if none
	pq       nodePQ
	seq      uint64 // insertion counter for FIFO tie-breaking
	expanded int
}

func newRunner(g *occgrid.Grid, goal occgrid.Cell, cfg Options) *runner {
	n := g.Width * g.Height

	return &runner{
		g:       g,
		goal:    goal,
		options: cfg,
		offsets: occgrid.Neighbors8(),
		cost:    make([]float64, n),
		prev:    make([]int, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init resets cost and predecessor tables and pushes start with cost 0.
func (r *runner) init(start occgrid.Cell) {
	// 1) Every cell starts unreached: cost +Inf, no predecessor.
	for i := range r.cost {
		r.cost[i] = math.Inf(1)
		r.prev[i] = -1
	}

	// 2) Cost of the start cell is zero.
	r.cost[r.index(start)] = 0

	// 3) Initialize the priority queue and push start as its first entry.
	heap.Init(&r.pq)
	r.push(start, 0)
}

// process pops the lowest-priority item until the goal is popped or the heap
// empties. It reports whether the goal was reached.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the lowest-priority item; equal priorities come out in push order.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale entries superseded by a cheaper push.
		if item.cost > r.cost[r.index(item.cell)] {
			continue
		}

		// 3) Popping the goal ends the search, even if cheaper entries remain queued.
		if item.cell == r.goal {
			return true, nil
		}

		// 4) Enforce the expansion cap before expanding another cell.
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return false, fmt.Errorf("%w: %d", ErrExpansionLimit, r.options.MaxExpansions)
		}

		// 5) Expand: relax every legal move out of the popped cell.
		r.expanded++
		r.relax(item.cell)
	}

	return false, nil
}

// relax examines every legal move out of u and records strictly cheaper routes.
func (r *runner) relax(u occgrid.Cell) {
	base := r.cost[r.index(u)]

	// 1) Offsets are visited in the fixed W, E, N, S, NW, SW, NE, SE order.
	for _, d := range r.offsets {
		// 2) Drop moves that leave the grid, hit an Obstacle or cut a corner.
		w, ok := moveCost(r.g, u, d[0], d[1], r.options)
		if !ok {
			continue
		}

		// 3) Only a strictly cheaper route replaces the recorded one.
		v := u.Add(d[0], d[1])
		vi := r.index(v)
		newCost := base + w
		if newCost >= r.cost[vi] {
			continue
		}

		// 4) Record the improvement and queue v again.
		r.cost[vi] = newCost
		r.prev[vi] = r.index(u)
		r.push(v, newCost)
	}
}

// push enqueues c with priority cost + h(c, goal).
func (r *runner) push(c occgrid.Cell, cost float64) {
	heap.Push(&r.pq, &nodeItem{
		cell:     c,
		cost:     cost,
		priority: cost + r.options.Heuristic(c, r.goal),
		seq:      r.seq,
	})
	r.seq++
}

// backtrack follows predecessors from goal to start and reverses the result.
// Only called after the goal was popped, so every link exists.
func (r *runner) backtrack(start occgrid.Cell) []occgrid.Cell {
	path := []occgrid.Cell{r.goal}
	for at := r.prev[r.index(r.goal)]; at >= 0; at = r.prev[at] {
		x, y := r.g.Coordinate(at)
		path = append(path, occgrid.Cell{X: x, Y: y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func (r *runner) index(c occgrid.Cell) int {
	return c.Y*r.g.Width + c.X
}

// moveCost reports the weight of moving from c by (dx, dy) and whether the
// move is legal: the target must be in bounds and free, and a diagonal move
// must not cut past an Obstacle on either orthogonal corner.
func moveCost(g *occgrid.Grid, c occgrid.Cell, dx, dy int, cfg Options) (float64, bool) {
	n := c.Add(dx, dy)
	if !g.InBounds(n) || g.IsObstacle(n) {
		return 0, false
	}
	if dx != 0 && dy != 0 {
		if g.IsObstacle(c.Add(dx, 0)) || g.IsObstacle(c.Add(0, dy)) {
			return 0, false
		}

		return cfg.DiagonalCost, true
	}

	return cfg.CardinalCost, true
}

// nodeItem is a frontier entry. seq breaks priority ties in insertion order.
type nodeItem struct {
	cell     occgrid.Cell
	cost     float64 // cost_so_far at push time
	priority float64 // cost + heuristic
	seq      uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (priority, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority, then by insertion sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element after heap reordering.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
