package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/statusgridgo/internal/config"
)

// translateNode converts a decoded node block into the agnostic model,
// evaluating the params expression into concrete cty values. Parameters
// stay untyped here; the rule factory owns their semantic validation.
func translateNode(block *nodeBlock) (*config.Node, error) {
	params, err := evalParams(block)
	if err != nil {
		return nil, err
	}

	return &config.Node{
		Name:         block.Name,
		Type:         config.NodeType(block.Type),
		Rule:         block.Rule,
		Dependencies: block.Dependencies,
		Params:       params,
	}, nil
}

func evalParams(block *nodeBlock) (map[string]cty.Value, error) {
	if block.Params == nil {
		return nil, nil
	}

	val, diags := block.Params.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("node %q: invalid params: %w", block.Name, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("node %q: params must be an object, got %s", block.Name, val.Type().FriendlyName())
	}
	params := val.AsValueMap()
	if len(params) == 0 {
		return nil, nil
	}
	return params, nil
}
