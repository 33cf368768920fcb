// Package shell implements the interactive command surface of the status
// tree: a line-oriented REPL that translates text commands into tree
// operations. It holds no rollup logic of its own.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vk/statusgridgo/internal/ctxlog"
	"github.com/vk/statusgridgo/internal/status"
	"github.com/vk/statusgridgo/internal/tree"
)

const helpText = `Commands:
  <node_name> <status>    Update a leaf node (statuses: green, yellow, red, unknown)
  set <node_name> <status>  Same as above
  get <node_name>         Show the current status of one node
  compute                 Recompute all derived nodes
  print                   Recompute and show the whole tree
  help                    Show this help
  quit                    Exit
`

// Shell reads commands from in and writes results to outW. It owns no
// state beyond the tree it operates on.
type Shell struct {
	tree *tree.Tree
	in   io.Reader
	outW io.Writer
}

// New creates a shell bound to the given tree and streams.
func New(t *tree.Tree, in io.Reader, outW io.Writer) *Shell {
	return &Shell{tree: t, in: in, outW: outW}
}

// Run processes commands until EOF, a quit command, or context
// cancellation. Command errors are printed, not fatal: a typo must not
// take the operator's session down.
func (s *Shell) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	scanner := bufio.NewScanner(s.in)

	fmt.Fprint(s.outW, "Enter status updates (format: <node_name> <status>). Type 'help' for commands.\n")

	for {
		fmt.Fprint(s.outW, "> ")
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		logger.Debug("Shell command received.", "line", line)

		if quit := s.dispatch(ctx, line); quit {
			fmt.Fprintln(s.outW, "Exiting...")
			return nil
		}
	}

	return scanner.Err()
}

// dispatch executes one command line and reports whether the shell
// should terminate.
func (s *Shell) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)

	switch fields[0] {
	case "quit", "exit":
		return true

	case "help":
		fmt.Fprint(s.outW, helpText)

	case "print", "status":
		if err := s.tree.Compute(ctx); err != nil {
			fmt.Fprintf(s.outW, "error: %v\n", err)
			return false
		}
		s.render()

	case "compute":
		if err := s.tree.Compute(ctx); err != nil {
			fmt.Fprintf(s.outW, "error: %v\n", err)
			return false
		}
		fmt.Fprintln(s.outW, "ok")

	case "get":
		if len(fields) != 2 {
			fmt.Fprintln(s.outW, "usage: get <node_name>")
			return false
		}
		st, ok := s.tree.GetStatus(fields[1])
		if !ok {
			fmt.Fprintf(s.outW, "unknown node: %s\n", fields[1])
			return false
		}
		fmt.Fprintf(s.outW, "%s: %s\n", fields[1], st)

	case "set":
		if len(fields) != 3 {
			fmt.Fprintln(s.outW, "usage: set <node_name> <status>")
			return false
		}
		s.setStatus(fields[1], fields[2])

	default:
		// Bare "<node_name> <status>" form.
		if len(fields) != 2 {
			fmt.Fprintf(s.outW, "unrecognized command: %s (try 'help')\n", line)
			return false
		}
		s.setStatus(fields[0], fields[1])
	}

	return false
}

func (s *Shell) setStatus(name, text string) {
	st := status.Parse(text)
	if st == status.Unknown && text != status.Unknown.String() {
		fmt.Fprintf(s.outW, "unrecognized status %q, treating as unknown\n", text)
	}
	if err := s.tree.SetStatus(name, st); err != nil {
		fmt.Fprintf(s.outW, "error: %v\n", err)
		return
	}
	fmt.Fprintf(s.outW, "%s = %s\n", name, st)
}
