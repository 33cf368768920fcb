package tree

import (
	"sort"

	"github.com/vk/statusgridgo/internal/config"
	"github.com/vk/statusgridgo/internal/status"
)

// View is a read-only snapshot of one node, for renderers and reporting
// endpoints. Dependencies preserve the declared order.
type View struct {
	Name         string
	Type         config.NodeType
	Status       status.Status
	Rule         string
	Dependencies []string
}

// Nodes returns a consistent snapshot of every node, sorted by name. The
// whole snapshot is taken under one read lock, so it never mixes statuses
// from different compute passes.
func (t *Tree) Nodes() []View {
	t.mu.RLock()
	defer t.mu.RUnlock()

	views := make([]View, 0, len(t.nodes))
	for _, n := range t.nodes {
		v := View{
			Name:         n.name,
			Type:         n.typ,
			Status:       n.status,
			Dependencies: append([]string(nil), n.deps...),
		}
		if n.typ == config.Derived {
			v.Rule = n.rule.Kind.Name()
		}
		views = append(views, v)
	}

	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views
}
