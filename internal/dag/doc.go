// Package dag provides the dependency graph underlying a status tree: a
// set of named nodes with directed edges, cycle detection, and a
// deterministic topological ordering used to schedule rollup evaluation.
package dag
