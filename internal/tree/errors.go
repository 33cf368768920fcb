package tree

import "errors"

// Sentinel errors for the four failure kinds the tree can surface.
// Callers discriminate with errors.Is; the wrapped messages carry the
// offending node or reference names.
var (
	// ErrInvalidConfig marks any structural configuration problem found
	// during Load: duplicate names, dangling dependency references,
	// unknown rules, missing or invalid rule parameters.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNodeNotFound is returned when writing to a name that does not
	// exist in the tree. Reads signal absence without an error.
	ErrNodeNotFound = errors.New("node not found")

	// ErrInvalidOperation is returned when writing the status of a
	// derived node; derived statuses are output-only.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrCycleDetected is returned by Compute when the dependency graph
	// is not acyclic. No statuses change when it is returned.
	ErrCycleDetected = errors.New("cycle detected")
)
