// Package app wires the application together: logger construction,
// configuration loading, tree building, the optional healthcheck server,
// and the interactive run loop.
package app
