// Package session binds the merge engine's types to caller-issued handles
// the way core.Graph binds its vertex/edge maps behind a mutex: an explicit
// Store owns a map[Handle]*run guarded by a sync.Mutex, rather than the
// package-level static map an earlier design considered and rejected. The
// engine, region, and volume packages never reference Handle themselves;
// Store is purely a binding-layer seam for callers (e.g. cmd/agglo-cli)
// that want to address a run by value instead of holding a pointer.
package session

import "errors"

// Sentinel errors for handle lookups.
var (
	// ErrHandleNotFound indicates an operation referenced an unknown or
	// already-freed handle.
	ErrHandleNotFound = errors.New("session: handle not found")
)

// Handle addresses one in-progress or finished merge run.
type Handle uint64
