// Package hcl implements the config.Loader interface on top of
// hashicorp/hcl. Both the native HCL syntax (.hcl) and the HCL JSON
// flavor (.json) are accepted, so hand-written topology files and
// machine-generated ones share one logical schema.
package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/statusgridgo/internal/config"
	"github.com/vk/statusgridgo/internal/ctxlog"
	"github.com/vk/statusgridgo/internal/fsutil"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers and parses every .hcl and .json file under the given
// paths and merges their node blocks into one model, preserving the order
// in which they were declared.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findConfigFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl or .json configuration files found in %v", paths)
	}
	logger.Debug("Discovered configuration files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		root, err := parseFile(parser, file)
		if err != nil {
			return nil, err
		}
		for _, block := range root.Nodes {
			node, err := translateNode(block)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Nodes = append(model.Nodes, node)
		}
	}

	logger.Debug("HCL loading complete.", "nodes", len(model.Nodes))
	return model, nil
}

func parseFile(parser *hclparse.Parser, file string) (*fileRoot, error) {
	var (
		parsed *hcl.File
		diags  hcl.Diagnostics
	)
	if isJSON(file) {
		parsed, diags = parser.ParseJSONFile(file)
	} else {
		parsed, diags = parser.ParseHCLFile(file)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(parsed.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
	}
	return &root, nil
}

// findConfigFiles resolves the configured paths into a flat, ordered list
// of configuration files. A path that does not exist is an error; a
// misspelled -config value should fail loudly, not load an empty tree.
func (l *Loader) findConfigFiles(paths []string) ([]string, error) {
	var all []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		files, err := fsutil.FindFilesByExtension(path, ".hcl", ".json")
		if err != nil {
			return nil, err
		}
		all = append(all, files...)
	}
	return all, nil
}

func isJSON(file string) bool {
	return filepath.Ext(file) == ".json"
}
