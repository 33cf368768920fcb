package shell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vk/statusgridgo/internal/config"
	"github.com/vk/statusgridgo/internal/tree"
)

// render prints the whole tree: the sorted leaf list first, then the
// derived nodes as an indented hierarchy from each root (a derived node
// no other derived node depends on).
func (s *Shell) render() {
	views := s.tree.Nodes()

	byName := make(map[string]tree.View, len(views))
	var leaves, derived []tree.View
	for _, v := range views {
		byName[v.Name] = v
		if v.Type == config.Imported {
			leaves = append(leaves, v)
		} else {
			derived = append(derived, v)
		}
	}

	fmt.Fprintln(s.outW, "Status Tree Results:")
	fmt.Fprintln(s.outW, "====================")
	fmt.Fprintln(s.outW)
	fmt.Fprintln(s.outW, "LEAF NODES (Imported):")
	fmt.Fprintln(s.outW, "----------------------")
	for _, v := range leaves {
		fmt.Fprintf(s.outW, "  %s: %s\n", v.Name, v.Status)
	}

	fmt.Fprintln(s.outW)
	fmt.Fprintln(s.outW, "DERIVED NODES (Computed):")
	fmt.Fprintln(s.outW, "-------------------------")

	// A root is a derived node that feeds no other derived node.
	hasDerivedDependent := make(map[string]bool)
	for _, v := range derived {
		for _, dep := range v.Dependencies {
			if byName[dep].Type == config.Derived {
				hasDerivedDependent[dep] = true
			}
		}
	}

	visited := make(map[string]bool)
	for _, v := range derived {
		if !hasDerivedDependent[v.Name] {
			s.renderSubtree(byName, v, 0, visited)
		}
	}
}

func (s *Shell) renderSubtree(byName map[string]tree.View, v tree.View, depth int, visited map[string]bool) {
	if visited[v.Name] {
		return
	}
	visited[v.Name] = true

	fmt.Fprintf(s.outW, "%s%s: %s", strings.Repeat("\t", depth), v.Name, v.Status)
	if len(v.Dependencies) > 0 {
		fmt.Fprintf(s.outW, " <- [%s]", strings.Join(v.Dependencies, ", "))
	}
	fmt.Fprintln(s.outW)

	// Recurse into derived dependencies only, in name order.
	var children []string
	for _, dep := range v.Dependencies {
		if byName[dep].Type == config.Derived {
			children = append(children, dep)
		}
	}
	sort.Strings(children)
	for _, child := range children {
		s.renderSubtree(byName, byName[child], depth+1, visited)
	}
}
