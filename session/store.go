package session

import (
	"sync"

	"github.com/katalvlaran/agglo/engine"
	"github.com/katalvlaran/agglo/region"
	"github.com/katalvlaran/agglo/score"
	"github.com/katalvlaran/agglo/visitor"
)

// run holds one handle's live engine, which also answers the
// segmentation- and region-graph-extraction calls.
type run struct {
	eng *engine.Engine
}

// Store is the explicit handle registry: a map[Handle]*run guarded by a
// mutex, owned by whatever binding layer wants it rather than shared as
// package-level state. Safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	runs   map[Handle]*run
	nextID Handle
}

// New returns an empty Store.
func New() *Store {
	return &Store{runs: make(map[Handle]*run)}
}

// Create seeds an engine over g and scoring, registers it under a fresh
// handle, and returns the handle.
func (s *Store) Create(g *region.Graph, scoring score.Func, opts engine.Options) (Handle, error) {
	eng, err := engine.New(g, scoring, opts)
	if err != nil {
		return 0, err
	}
	eng.Seed()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	h := s.nextID
	s.runs[h] = &run{eng: eng}

	return h, nil
}

// MergeUntil runs h's engine forward to threshold, recording every merge
// visitor v observes. Returns the number of merges performed.
func (s *Store) MergeUntil(h Handle, threshold float64, v visitor.Visitor) (int, error) {
	r, err := s.lookup(h)
	if err != nil {
		return 0, err
	}

	return r.eng.MergeUntil(threshold, v)
}

// ExtractSegmentation returns h's current per-seed label assignment; see
// engine.Engine.ExtractSegmentation.
func (s *Store) ExtractSegmentation(h Handle, seeds []uint32) ([]uint32, error) {
	r, err := s.lookup(h)
	if err != nil {
		return nil, err
	}

	return r.eng.ExtractSegmentation(seeds), nil
}

// ExtractRegionGraph returns h's current live region graph; see
// engine.Engine.ExtractRegionGraph.
func (s *Store) ExtractRegionGraph(h Handle) ([]engine.ScoredEdge, error) {
	r, err := s.lookup(h)
	if err != nil {
		return nil, err
	}

	return r.eng.ExtractRegionGraph(), nil
}

// Free releases h. Subsequent operations against h return ErrHandleNotFound.
func (s *Store) Free(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[h]; !ok {
		return ErrHandleNotFound
	}
	delete(s.runs, h)

	return nil
}

func (s *Store) lookup(h Handle) (*run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.runs[h]
	if !ok {
		return nil, ErrHandleNotFound
	}

	return r, nil
}
