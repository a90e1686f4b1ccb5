package region

import "github.com/katalvlaran/agglo/stats"

// Graph holds the node set and incidence structure for N regions, numbered
// 1..N. It is not safe for concurrent use: the merge engine that owns a
// Graph is itself single-threaded.
type Graph struct {
	nodes []Node // index 0 is the reserved background id and always dead

	edges      map[uint64]*Edge
	nextEdgeID uint64

	// incident[n][w] = edge id between live nodes n and w. Populated for
	// both endpoints of every live edge, mirroring core.Graph's
	// adjacency-list shape so redirection during merge is an O(1)
	// re-keying rather than a linear scan.
	incident map[uint32]map[uint32]uint64
}

// NewGraph allocates a region graph for n regions with ids 1..n, all live
// and of size 1 (callers set Size after construction via SetSize when seed
// voxel counts are known).
func NewGraph(n int) *Graph {
	g := &Graph{
		nodes:    make([]Node, n+1),
		edges:    make(map[uint64]*Edge),
		incident: make(map[uint32]map[uint32]uint64, n),
	}
	for i := 1; i <= n; i++ {
		g.nodes[i] = Node{Live: true, Size: 1}
		g.incident[uint32(i)] = make(map[uint32]uint64)
	}

	return g
}

// NumNodes returns the declared node count N (ids run 1..N).
func (g *Graph) NumNodes() int {
	return len(g.nodes) - 1
}

// IsLive reports whether id is a currently-live node.
func (g *Graph) IsLive(id uint32) bool {
	return int(id) > 0 && int(id) < len(g.nodes) && g.nodes[id].Live
}

// SetSize overrides a live node's voxel count, used by seeding adapters
// that compute sizes directly rather than via merge accumulation.
func (g *Graph) SetSize(id uint32, size uint64) {
	g.nodes[id].Size = size
}

// Size returns a live node's voxel count.
func (g *Graph) Size(id uint32) uint64 {
	return g.nodes[id].Size
}

// AddEdge creates a new edge between live, distinct nodes u and v that do
// not already share a live edge, seeded with stat. Returns the new edge's
// id.
func (g *Graph) AddEdge(u, v uint32, stat stats.Statistic) (uint64, error) {
	if u == v {
		return 0, ErrSelfEdge
	}
	if !g.IsLive(u) || !g.IsLive(v) {
		return 0, ErrNodeNotLive
	}
	if _, exists := g.incident[u][v]; exists {
		return 0, ErrEdgeExists
	}

	g.nextEdgeID++
	id := g.nextEdgeID
	e := &Edge{ID: id, U: u, V: v, Stat: stat}
	g.edges[id] = e
	g.incident[u][v] = id
	g.incident[v][u] = id

	return id, nil
}

// Edge returns the edge with the given id, or nil if it does not exist or
// has been deleted.
func (g *Graph) Edge(id uint64) *Edge {
	e, ok := g.edges[id]
	if !ok || e.Deleted {
		return nil
	}

	return e
}

// IterIncident returns the live edges currently incident to live node n.
func (g *Graph) IterIncident(n uint32) []*Edge {
	nbrs := g.incident[n]
	out := make([]*Edge, 0, len(nbrs))
	for _, eid := range nbrs {
		if e := g.Edge(eid); e != nil {
			out = append(out, e)
		}
	}

	return out
}

// LiveEdges returns every currently live edge, in edge-id order for
// deterministic iteration.
func (g *Graph) LiveEdges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if !e.Deleted {
			out = append(out, e)
		}
	}
	sortEdgesByID(out)

	return out
}

func sortEdgesByID(edges []*Edge) {
	// Small-scale insertion sort avoids pulling in sort for a call site
	// that already owns its slice; region graphs stay small relative to
	// voxel counts (one entry per adjacent seed pair).
	for i := 1; i < len(edges); i++ {
		for j := i; j > 0 && edges[j-1].ID > edges[j].ID; j-- {
			edges[j-1], edges[j] = edges[j], edges[j-1]
		}
	}
}

// DeleteEdge marks the edge with the given id deleted, removing it from
// both endpoints' incidence maps. Used by the merge engine when an edge
// becomes moot: its endpoints already share a live root, or a visitor has
// vetoed the merge permanently.
func (g *Graph) DeleteEdge(id uint64) error {
	e, ok := g.edges[id]
	if !ok || e.Deleted {
		return ErrEdgeNotFound
	}
	g.deleteEdge(e)

	return nil
}

// deleteEdge marks e deleted and removes it from both endpoints'
// incidence maps.
func (g *Graph) deleteEdge(e *Edge) {
	e.Deleted = true
	delete(g.incident[e.U], e.V)
	delete(g.incident[e.V], e.U)
}

// redirect moves edge e's endpoint from loser to survivor in place,
// without touching the opposite endpoint or the edge's statistic.
func (g *Graph) redirect(e *Edge, loser, survivor uint32) {
	delete(g.incident[loser], otherEnd(e, loser))
	if e.U == loser {
		e.U = survivor
	} else {
		e.V = survivor
	}
	other := otherEnd(e, survivor)
	g.incident[survivor][other] = e.ID
	g.incident[other][survivor] = e.ID
}

func otherEnd(e *Edge, n uint32) uint32 {
	if e.U == n {
		return e.V
	}

	return e.U
}

// MergeNodes absorbs loser into survivor = min(u, v) (tie-break fixed as
// smaller id). For every edge (loser, w) with w !=
// survivor: if a (survivor, w) edge already exists, combine is called to
// fold the loser's edge statistic into the survivor's edge and the
// duplicate is deleted; otherwise the edge is redirected in place. Any
// (survivor, loser) edge is deleted as a self-loop. Returns the survivor id.
func (g *Graph) MergeNodes(u, v uint32, combine func(dst, src *Edge) error) (uint32, error) {
	if !g.IsLive(u) || !g.IsLive(v) {
		return 0, ErrNodeNotLive
	}
	if u == v {
		return 0, ErrSelfEdge
	}

	survivor, loser := u, v
	if loser < survivor {
		survivor, loser = loser, survivor
	}

	// Delete the direct survivor-loser edge first; it would otherwise
	// become a self-loop.
	if directID, ok := g.incident[survivor][loser]; ok {
		g.deleteEdge(g.edges[directID])
	}

	// Snapshot loser's incident edge ids before mutating the map we're
	// iterating, since redirect/delete both mutate g.incident[loser].
	loserEdgeIDs := make([]uint64, 0, len(g.incident[loser]))
	for _, eid := range g.incident[loser] {
		loserEdgeIDs = append(loserEdgeIDs, eid)
	}

	for _, eid := range loserEdgeIDs {
		e := g.edges[eid]
		if e.Deleted {
			continue
		}
		w := otherEnd(e, loser)
		if dupID, ok := g.incident[survivor][w]; ok {
			dup := g.edges[dupID]
			if err := combine(dup, e); err != nil {
				return 0, err
			}
			g.deleteEdge(e)
		} else {
			g.redirect(e, loser, survivor)
		}
	}

	g.nodes[survivor].Size += g.nodes[loser].Size
	g.nodes[loser].Live = false
	g.nodes[loser].Parent = survivor
	delete(g.incident, loser)

	return survivor, nil
}

// Resolve walks parent links from id to its live root, compressing the
// path so future calls are O(1) amortized.
func (g *Graph) Resolve(id uint32) uint32 {
	root := id
	for !g.nodes[root].Live {
		root = g.nodes[root].Parent
	}
	for !g.nodes[id].Live && id != root {
		next := g.nodes[id].Parent
		g.nodes[id].Parent = root
		id = next
	}

	return root
}
