package hcl

import "github.com/hashicorp/hcl/v2"

// nodeBlock is the HCL surface of a single `node` block:
//
//	node "db_cluster" {
//	  type         = "derived"
//	  rule         = "threshold_rollup"
//	  dependencies = ["db_primary", "db_replica_1"]
//	  params       = { red_threshold = 2, yellow_to_red = 3, yellow_to_yellow = 1 }
//	}
//
// The params attribute stays an undecoded expression here; it is evaluated
// into cty values during translation and typed by the rule factory.
type nodeBlock struct {
	Name         string         `hcl:"name,label"`
	Type         string         `hcl:"type"`
	Rule         string         `hcl:"rule,optional"`
	Dependencies []string       `hcl:"dependencies,optional"`
	Params       hcl.Expression `hcl:"params,optional"`
}

// fileRoot decodes the top-level blocks of a configuration file. There is
// deliberately no remain body: unknown blocks or attributes surface as
// decode errors instead of being silently dropped.
type fileRoot struct {
	Nodes []*nodeBlock `hcl:"node,block"`
}
