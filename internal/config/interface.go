package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths (files or directories),
	// translates it into the format-agnostic model, and returns it. Load
	// performs syntactic validation only; structural validation of the
	// resulting graph happens when the model is handed to a tree.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
