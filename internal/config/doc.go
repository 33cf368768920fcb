// Package config defines the format-agnostic configuration model for a
// status tree, plus the Loader interface that format-specific adapters
// (currently HCL and its JSON flavor) implement.
package config
