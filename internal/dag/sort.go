package dag

import (
	"fmt"
	"sort"
)

// TopologicalOrder returns every node ID ordered so that each node appears
// after all of its dependencies (Kahn's algorithm). Nodes that become ready
// at the same time are emitted in name order, making the result
// deterministic for a given graph.
//
// If the graph contains a cycle the returned error names a node on it, via
// the DFS detector, and no ordering is produced.
func (g *Graph) TopologicalOrder() ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	inDegree := make(map[string]int, len(g.nodes))
	for id, n := range g.nodes {
		inDegree[id] = len(n.deps)
	}

	var ready []string
	for id, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		released := make([]string, 0, len(g.nodes[id].dependents))
		for depID := range g.nodes[id].dependents {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				released = append(released, depID)
			}
		}
		sort.Strings(released)
		ready = mergeSorted(ready, released)
	}

	if len(order) != len(g.nodes) {
		// Kahn only proves a cycle exists; DFS names a node on it.
		if err := g.detectCyclesLocked(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("cycle detected: %d of %d nodes unschedulable", len(g.nodes)-len(order), len(g.nodes))
	}

	return order, nil
}

// mergeSorted merges two sorted string slices into one sorted slice.
func mergeSorted(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
