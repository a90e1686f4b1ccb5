// Package stats is consumed by package engine: every region-graph edge owns
// one Statistic instance, created via New and keyed by edge id, that is fed
// contributing affinities at construction and folded together whenever two
// edges are combined during a merge.
package stats
