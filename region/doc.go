// This file documents the package-level invariants region.Graph maintains
// across AddEdge, MergeNodes, and Resolve:
//
//  1. For every live node n, its incident edge set equals the set of edges
//     in the graph with n as an endpoint.
//  2. No duplicate edges between the same pair of live endpoints.
//  3. No self-loops.
//  4. Dead nodes never appear as edge endpoints once MergeNodes returns;
//     parent links form a forest with live roots.
package region
