package watershed

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/agglo/region"
	"github.com/katalvlaran/agglo/stats"
	"github.com/katalvlaran/agglo/volume"
)

// voxelEdge is one interfacial affinity between two 6-connected voxels,
// identified by their flattened linear index.
type voxelEdge struct {
	u, v int
	aff  float32
}

// dsu is an index-based disjoint-set over voxel linear indices, grounded on
// prim_kruskal's map-based union-by-rank find/union closures, specialized to
// dense int indices since voxel ids are already a contiguous range.
type dsu struct {
	parent []int
	rank   []int8
	size   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int8, n), size: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

func (d *dsu) union(x, y int) {
	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return
	}
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
}

// Seed extracts an initial oversegmentation from aff by single-linkage
// basin growth: voxel pairs with affinity at or above opts.High always
// merge; pairs at or below opts.Low never do; pairs in between merge only
// when at least one side is still an ungrown singleton, so an ambiguous
// edge can extend a basin into undecided territory but cannot bridge two
// basins that have already grown past one voxel.
func Seed(aff *volume.Affinity, opts Options) (*volume.Seg, error) {
	if aff == nil {
		return nil, ErrNilAffinity
	}
	if opts.Low < 0 || opts.High > 1 || opts.Low > opts.High {
		return nil, ErrBadThresholds
	}

	edgesByChannel := make([][]voxelEdge, 3)
	g := new(errgroup.Group)
	for c := 0; c < 3; c++ {
		c := c
		g.Go(func() error {
			edgesByChannel[c] = scanChannel(aff, c)

			return nil
		})
	}
	_ = g.Wait() // scanChannel never returns an error; Wait only synchronizes.

	var edges []voxelEdge
	for _, ch := range edgesByChannel {
		edges = append(edges, ch...)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].aff > edges[j].aff
	})

	n := aff.W * aff.H * aff.D
	d := newDSU(n)
	for _, e := range edges {
		if e.aff <= opts.Low {
			break // sorted descending: every remaining edge is also <= Low
		}
		ru, rv := d.find(e.u), d.find(e.v)
		if ru == rv {
			continue
		}
		if e.aff >= opts.High || d.size[ru] == 1 || d.size[rv] == 1 {
			d.union(ru, rv)
		}
	}

	labels := make([]uint32, n)
	rootToID := make(map[int]uint32)
	var nextID uint32
	for i := 0; i < n; i++ {
		root := d.find(i)
		id, ok := rootToID[root]
		if !ok {
			nextID++
			id = nextID
			rootToID[root] = id
		}
		labels[i] = id
	}

	return volume.NewSeg(aff.W, aff.H, aff.D, labels)
}

// scanChannel collects every interfacial affinity edge along one axis
// direction (0=x, 1=y, 2=z), connecting each voxel to its positive
// neighbor along that axis so every 6-connected pair is visited exactly
// once across the three channels.
func scanChannel(aff *volume.Affinity, c int) []voxelEdge {
	w, h, dep := aff.W, aff.H, aff.D
	edges := make([]voxelEdge, 0, w*h*dep)
	for z := 0; z < dep; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				nx, ny, nz := x, y, z
				switch c {
				case 0:
					nx++
				case 1:
					ny++
				case 2:
					nz++
				}
				if !aff.InBounds(nx, ny, nz) {
					continue
				}
				a, _ := aff.At(c, x, y, z)
				u := z*w*h + y*w + x
				v := nz*w*h + ny*w + nx
				edges = append(edges, voxelEdge{u: u, v: v, aff: a})
			}
		}
	}

	return edges
}

// pairKey uniquely identifies an unordered pair of region ids with a < b.
type pairKey struct{ a, b uint32 }

// BuildRegionGraph constructs the initial region graph from seg's basins,
// routing every interfacial voxel affinity in aff into the statistic owned
// by the edge between its two basins. Background voxels (label 0) and
// intra-basin affinities never become edges.
func BuildRegionGraph(aff *volume.Affinity, seg *volume.Seg, kind stats.Kind, opts stats.Options) (*region.Graph, error) {
	if aff == nil {
		return nil, ErrNilAffinity
	}
	if seg == nil {
		return nil, ErrNilSeg
	}
	if aff.W != seg.W || aff.H != seg.H || aff.D != seg.D {
		return nil, ErrDimMismatch
	}

	contrib := make(map[pairKey][]float32)
	w, h, dep := aff.W, aff.H, aff.D
	for z := 0; z < dep; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				lu, _ := seg.At(x, y, z)
				if lu == 0 {
					continue
				}
				for c := 0; c < 3; c++ {
					nx, ny, nz := x, y, z
					switch c {
					case 0:
						nx++
					case 1:
						ny++
					case 2:
						nz++
					}
					if !seg.InBounds(nx, ny, nz) {
						continue
					}
					lv, _ := seg.At(nx, ny, nz)
					if lv == 0 || lv == lu {
						continue
					}
					a, _ := aff.At(c, x, y, z)
					k := pairKey{a: lu, b: lv}
					if k.a > k.b {
						k.a, k.b = k.b, k.a
					}
					contrib[k] = append(contrib[k], a)
				}
			}
		}
	}

	g := region.NewGraph(seg.NumIDs())
	for id := 1; id <= seg.NumIDs(); id++ {
		g.SetSize(uint32(id), seg.Sizes[id])
	}

	keys := make([]pairKey, 0, len(contrib))
	for k := range contrib {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}

		return keys[i].b < keys[j].b
	})

	for _, k := range keys {
		stat, err := stats.New(kind, opts)
		if err != nil {
			return nil, err
		}
		if err := stat.Init(contrib[k]); err != nil {
			return nil, err
		}
		if _, err := g.AddEdge(k.a, k.b, stat); err != nil {
			return nil, err
		}
	}

	return g, nil
}
