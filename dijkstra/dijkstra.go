package dijkstra

import (
	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/gridroute/adjacency"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// ShortestPath computes the minimum-cost route from start to finish over adj.
//
// Returns:
//
//   - Result.Cost: total route weight, or Unreachable.
//   - Result.Path: start … finish inclusive, or empty when unreachable.
//   - err:         ErrNilAdjacency if adj is nil.
//
// start == finish yields the one-vertex route at cost 0. Vertices missing
// from adj simply have no outgoing arcs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(adj *adjacency.Map, start, finish gridgraph.VertexID, opts ...Option) (Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input
	if adj == nil {
		return Result{Cost: Unreachable}, ErrNilAdjacency
	}
	if start == finish {
		return Result{Cost: 0, Path: []gridgraph.VertexID{start}, Settled: 1}, nil
	}

	// 3) Run
	r := &runner{
		adj:     adj,
		options: cfg,
		start:   start,
		finish:  finish,
		cost:    make(map[gridgraph.VertexID]int64),
		prev:    make(map[gridgraph.VertexID]gridgraph.VertexID),
		order:   make(map[gridgraph.VertexID]int),
		settled: make(map[gridgraph.VertexID]bool),
		pq:      priorityqueue.NewWith(byCostThenOrder),
	}
	r.init()
	r.process()

	// 4) Rebuild route
	return r.result(), nil
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	adj     *adjacency.Map
	options Options
	start   gridgraph.VertexID
	finish  gridgraph.VertexID

	cost    map[gridgraph.VertexID]int64              // best-known cost from start
	prev    map[gridgraph.VertexID]gridgraph.VertexID // predecessor on the best route
	order   map[gridgraph.VertexID]int                // discovery order, tie-break key
	settled map[gridgraph.VertexID]bool               // cost is final
	count   int

	pq *priorityqueue.Queue
}

// item is a frontier entry. Entries are never updated in place: a better
// cost pushes a new item and the old one is skipped when popped.
type item struct {
	id    gridgraph.VertexID
	cost  int64
	order int
}

// byCostThenOrder orders items by cost, then by discovery order.
func byCostThenOrder(a, b interface{}) int {
	x, y := a.(*item), b.(*item)
	switch {
	case x.cost < y.cost:
		return -1
	case x.cost > y.cost:
		return 1
	case x.order < y.order:
		return -1
	case x.order > y.order:
		return 1
	default:
		return 0
	}
}

// init registers the finish first so that it wins ties against vertices
// discovered later, then settles the start and relaxes its arcs.
func (r *runner) init() {
	r.order[r.finish] = 0
	r.cost[r.start] = 0
	r.settled[r.start] = true
	r.count = 1
	r.relax(r.start)
}

// process settles the cheapest frontier vertex until no finite entry is left.
func (r *runner) process() {
	for !r.pq.Empty() {
		v, _ := r.pq.Dequeue()
		it := v.(*item)

		// Skip stale entries.
		if r.settled[it.id] || it.cost != r.cost[it.id] {
			continue
		}
		r.settled[it.id] = true
		r.count++
		r.relax(it.id)
	}
}

// relax tries to improve every neighbor of u. Arcs back to the start are
// ignored and only a strictly lower cost replaces the current one.
func (r *runner) relax(u gridgraph.VertexID) {
	base := r.cost[u]
	for _, a := range r.adj.Arcs(u) {
		if a.To == r.start {
			continue
		}
		next := base + a.Weight
		if next > r.options.MaxCost {
			continue
		}
		if cur, ok := r.cost[a.To]; ok && next >= cur {
			continue
		}
		r.cost[a.To] = next
		r.prev[a.To] = u
		if _, ok := r.order[a.To]; !ok {
			r.order[a.To] = len(r.order)
		}
		r.pq.Enqueue(&item{id: a.To, cost: next, order: r.order[a.To]})
	}
}

// result walks predecessor links from the finish back to the start.
func (r *runner) result() Result {
	c, ok := r.cost[r.finish]
	if !ok {
		return Result{Cost: Unreachable, Path: []gridgraph.VertexID{}, Settled: r.count}
	}
	path := []gridgraph.VertexID{r.finish}
	for at := r.finish; at != r.start; {
		at = r.prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return Result{Cost: c, Path: path, Settled: r.count}
}
