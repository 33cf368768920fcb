// Package tree implements the status rollup evaluator: it owns the node
// graph built from a configuration model, accepts status writes for
// imported nodes, and recomputes every derived node in dependency order.
package tree

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/statusgridgo/internal/config"
	"github.com/vk/statusgridgo/internal/ctxlog"
	"github.com/vk/statusgridgo/internal/dag"
	"github.com/vk/statusgridgo/internal/rule"
	"github.com/vk/statusgridgo/internal/status"
)

// Tree is one independently-owned status tree. The zero value is not
// usable; construct with New. A single lock guards the whole tree: Load
// and Compute require exclusive access to every node, and SetStatus must
// not interleave with an in-flight compute pass.
type Tree struct {
	mu    sync.RWMutex
	nodes map[string]*node
	graph *dag.Graph
}

// node is the internal vertex representation: identity, kind, current
// status, and (for derived nodes) the rule and the declared dependency
// order, which is preserved for rule input sequencing.
type node struct {
	name   string
	typ    config.NodeType
	status status.Status
	rule   rule.Rule
	deps   []string
}

// New returns an empty tree. Loading a configuration populates it.
func New() *Tree {
	return &Tree{
		nodes: make(map[string]*node),
		graph: dag.New(),
	}
}

// Load validates the configuration model, builds the node graph, and
// swaps it in. The build is staged off to the side: on any validation
// error the previously loaded graph remains untouched. On success the
// prior graph is discarded entirely and every node starts at Unknown.
//
// Cycles are deliberately not rejected here; they surface from Compute.
func (t *Tree) Load(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Tree load started.", "node_count", len(model.Nodes))

	nodes, graph, err := build(model)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	t.mu.Lock()
	t.nodes = nodes
	t.graph = graph
	t.mu.Unlock()

	logger.Debug("Tree load complete.", "node_count", len(nodes))
	return nil
}

// build constructs the staging node table and dependency graph.
func build(model *config.Model) (map[string]*node, *dag.Graph, error) {
	nodes := make(map[string]*node, len(model.Nodes))
	graph := dag.New()

	for _, spec := range model.Nodes {
		if spec.Name == "" {
			return nil, nil, fmt.Errorf("node with empty name")
		}
		if _, exists := nodes[spec.Name]; exists {
			return nil, nil, fmt.Errorf("duplicate node name %q", spec.Name)
		}

		n := &node{
			name:   spec.Name,
			typ:    spec.Type,
			status: status.Unknown,
			deps:   spec.Dependencies,
		}

		switch spec.Type {
		case config.Imported:
			if spec.Rule != "" || len(spec.Dependencies) > 0 || len(spec.Params) > 0 {
				return nil, nil, fmt.Errorf("imported node %q must not declare a rule, dependencies, or params", spec.Name)
			}

		case config.Derived:
			if spec.Rule == "" {
				return nil, nil, fmt.Errorf("derived node %q missing a rule", spec.Name)
			}
			r, err := rule.New(spec.Rule, spec.Params)
			if err != nil {
				return nil, nil, fmt.Errorf("node %q: %w", spec.Name, err)
			}
			n.rule = r

		default:
			return nil, nil, fmt.Errorf("node %q has unknown type %q", spec.Name, spec.Type)
		}

		nodes[spec.Name] = n
		graph.AddNode(spec.Name)
	}

	// Second pass: resolve dependency references into edges. Every
	// reference must name a declared node; this is a load-time failure,
	// not a compute-time one.
	for _, spec := range model.Nodes {
		for _, dep := range spec.Dependencies {
			if _, ok := nodes[dep]; !ok {
				return nil, nil, fmt.Errorf("node %q depends on undeclared node %q", spec.Name, dep)
			}
			if err := graph.AddEdge(dep, spec.Name); err != nil {
				return nil, nil, err
			}
		}
	}

	return nodes, graph, nil
}

// GetStatus returns the current status of the named node. Absence is not
// an error: the second return reports whether the node exists.
func (t *Tree) GetStatus(name string) (status.Status, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.nodes[name]
	if !ok {
		return status.Unknown, false
	}
	return n.status, true
}

// SetStatus writes the status of an imported node. It fails with
// ErrNodeNotFound for an absent name and ErrInvalidOperation for a derived
// node. It never triggers recomputation.
func (t *Tree) SetStatus(name string, s status.Status) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.nodes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	if n.typ == config.Derived {
		return fmt.Errorf("%w: cannot set status of derived node %q", ErrInvalidOperation, name)
	}

	n.status = s
	return nil
}

// Compute recomputes every derived node exactly once, in an order where
// each node is visited after all of its dependencies have settled for this
// pass. If the dependency graph contains a cycle, Compute fails with
// ErrCycleDetected before touching any status.
func (t *Tree) Compute(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	order, err := t.graph.TopologicalOrder()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrCycleDetected, err)
	}

	for _, name := range order {
		n := t.nodes[name]
		if n.typ != config.Derived {
			continue
		}

		inputs := make([]status.Status, len(n.deps))
		for i, dep := range n.deps {
			inputs[i] = t.nodes[dep].status
		}
		n.status = n.rule.Evaluate(inputs)
	}

	logger.Debug("Compute pass complete.", "node_count", len(order))
	return nil
}
