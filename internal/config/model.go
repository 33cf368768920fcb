package config

import "github.com/zclconf/go-cty/cty"

// NodeType distinguishes leaf nodes, whose status is pushed in by an
// external reporter, from derived nodes, whose status is computed.
type NodeType string

const (
	// Imported marks a leaf node writable via SetStatus.
	Imported NodeType = "imported"
	// Derived marks a computed node; its status is output-only.
	Derived NodeType = "derived"
)

// Model is the unified representation of one status tree configuration,
// regardless of the file format it was loaded from. Nodes keep their
// declaration order.
type Model struct {
	Nodes []*Node
}

// Node describes a single tree vertex.
type Node struct {
	// Name is the unique, stable identifier of the node.
	Name string
	// Type is Imported or Derived.
	Type NodeType
	// Rule names the rollup rule for a derived node. Empty for imported nodes.
	Rule string
	// Dependencies lists the names of the nodes this node rolls up, in
	// declaration order. Empty for imported nodes.
	Dependencies []string
	// Params holds the raw, still-untyped rule parameters. Semantic
	// validation belongs to the rule factory.
	Params map[string]cty.Value
}
