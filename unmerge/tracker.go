// Package unmerge enforces mutual-exclusion constraints supplied by the
// caller: anti-group tuples, where each tuple lists two or more coherent
// groups of seed ids that must never end up in the same merged region.
// A Tracker is owned by a single merge engine run and scoped to its
// lifetime — construct it with New, use it for the run, and let it be
// garbage collected with the engine rather than leaking a process-wide
// singleton.
package unmerge

// groupID identifies one coherent group, chosen deterministically as the
// first seed id in the group's caller-supplied list.
type groupID uint32

// Tracker answers whether two seed ids may be merged without violating any
// configured anti-group tuple, and keeps group membership current as
// merges happen.
type Tracker struct {
	segToGroups  map[uint32][]groupID
	groupToAntis map[groupID][]groupID
	active       bool
}

// New builds a Tracker from tuples, where each tuple is a list of
// coherent groups and each group is a list of seed ids that must stay
// together. Every pair of groups within the same tuple becomes a mutual
// anti-pair. An empty tuples list yields a Tracker whose operations
// short-circuit to no-ops: if no constraints were supplied, both
// IsValidMerge and OnMerge are cheap no-ops.
func New(tuples [][][]uint32) *Tracker {
	t := &Tracker{
		segToGroups:  make(map[uint32][]groupID),
		groupToAntis: make(map[groupID][]groupID),
	}
	if len(tuples) == 0 {
		return t
	}
	t.active = true

	for _, tuple := range tuples {
		ids := make([]groupID, 0, len(tuple))
		for _, coherent := range tuple {
			if len(coherent) == 0 {
				continue
			}
			gid := groupID(coherent[0])
			ids = append(ids, gid)
			for _, seed := range coherent {
				t.segToGroups[seed] = append(t.segToGroups[seed], gid)
			}
		}
		// Every pair of groups within this tuple becomes mutually exclusive.
		for i := range ids {
			for j := range ids {
				if i == j {
					continue
				}
				t.groupToAntis[ids[i]] = append(t.groupToAntis[ids[i]], ids[j])
			}
		}
	}

	return t
}

// IsValidMerge reports whether seed ids a and b may be merged: false if
// any group a belongs to lists an anti-partner that b also belongs to.
// Complexity: O(|groups(a)| * |groups(b)|).
func (t *Tracker) IsValidMerge(a, b uint32) bool {
	if !t.active {
		return true
	}

	groupsA := t.segToGroups[a]
	groupsB := t.segToGroups[b]
	if len(groupsA) == 0 || len(groupsB) == 0 {
		return true
	}

	bSet := make(map[groupID]struct{}, len(groupsB))
	for _, g := range groupsB {
		bSet[g] = struct{}{}
	}

	for _, ga := range groupsA {
		for _, anti := range t.groupToAntis[ga] {
			if _, ok := bSet[anti]; ok {
				return false
			}
		}
	}

	return true
}

// OnMerge unions a's and b's group memberships onto survivor. Duplicates
// are allowed in the resulting slice; IsValidMerge's correctness does not
// depend on deduplication.
func (t *Tracker) OnMerge(a, b, survivor uint32) {
	if !t.active {
		return
	}

	merged := append(append([]groupID{}, t.segToGroups[a]...), t.segToGroups[b]...)
	if len(merged) == 0 {
		return
	}
	// Replace rather than append: merged already subsumes whichever of
	// a/b is the survivor, so appending on top would re-accumulate the
	// same groups every generation and grow unboundedly over a long
	// merge chain.
	t.segToGroups[survivor] = merged
}
