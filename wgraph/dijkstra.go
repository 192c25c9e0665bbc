package wgraph

import "container/heap"

// ShortestPath returns the minimum total weight of a path from src to dst,
// or Unreachable if dst cannot be reached. ShortestPath(s, s) is 0.
//
// Returns ErrVertexOutOfRange if src or dst is not a vertex of g.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (g *Graph) ShortestPath(src, dst int) (int64, error) {
	if err := g.checkVertex(dst); err != nil {
		return Unreachable, err
	}
	dist, err := g.Distances(src)
	if err != nil {
		return Unreachable, err
	}

	return dist[dst], nil
}

// Distances runs Dijkstra from src and returns the distance vector indexed
// by vertex. Slots of vertices no path reaches hold Unreachable.
// The returned slice belongs to the caller.
func (g *Graph) Distances(src int) ([]int64, error) {
	if err := g.checkVertex(src); err != nil {
		return nil, err
	}
	r := &runner{
		g:       g,
		dist:    make([]int64, len(g.adj)),
		visited: make([]bool, len(g.adj)),
		pq:      make(nodePQ, 0, len(g.adj)),
	}
	r.init(src)
	r.process()

	return r.dist, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	g       *Graph
	dist    []int64 // best known distance from the source
	visited []bool  // distance finalized
	pq      nodePQ
}

func (r *runner) init(src int) {
	for v := range r.dist {
		r.dist[v] = Unreachable
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process pops the closest unfinished vertex until the heap drains.
// Stale heap entries (already finalized vertices) are skipped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve every neighbor of the finalized vertex u.
// AddEdge rejects negative weights, so dist[u]+w never decreases below dist[u].
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, a := range r.g.adj[u] {
		if r.visited[a.To] {
			continue
		}
		// A sum that overflows int64 cannot beat any finite distance.
		nd := du + a.Weight
		if nd < du {
			continue
		}
		if nd >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = nd
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: nd})
	}
}

// nodeItem is a heap entry: a vertex and the tentative distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. A shorter distance to an
// already queued vertex is pushed as a new entry; the old one goes stale.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
