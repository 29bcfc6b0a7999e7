// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is one node of the command tree.
type Command struct {
	// Name is the command name as typed by the user.
	Name string

	// Summary is the one-line description shown in the parent's help.
	Summary string

	// Usage is the synopsis shown in the command's own help.
	Usage string

	// Flags returns the command's flag set. Nil means no flags.
	Flags func() *pflag.FlagSet

	// Subcommands are dispatched by the first positional argument.
	Subcommands []*Command

	// Run executes the command with the positional arguments left after
	// flag parsing.
	Run func(args []string) error
}

// errHelpShown is returned when help was requested and printed.
var errHelpShown = errors.New("help shown")

// Execute dispatches args through the tree. Help goes to w.
func (c *Command) Execute(args []string, w io.Writer) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(w)
		return errHelpShown
	}

	if len(c.Subcommands) > 0 {
		if len(args) == 0 || strings.HasPrefix(args[0], "-") {
			c.PrintHelp(w)
			return errors.New("command required")
		}
		for _, sub := range c.Subcommands {
			if sub.Name == args[0] {
				return sub.Execute(args[1:], w)
			}
		}
		return fmt.Errorf("unknown command %q, run '%s --help' for usage", args[0], c.Name)
	}

	if c.Flags != nil {
		fs := c.Flags()
		fs.SetOutput(io.Discard)
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				c.PrintHelp(w)
				return errHelpShown
			}
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		args = fs.Args()
	}

	return c.Run(args)
}

// PrintHelp writes the command's usage, flags and subcommands to w.
func (c *Command) PrintHelp(w io.Writer) {
	if c.Usage != "" {
		fmt.Fprintf(w, "Usage: %s\n", c.Usage)
	}
	if c.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", c.Summary)
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintln(w, "\nCommands:")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		_ = tw.Flush()
	}

	if c.Flags != nil {
		fmt.Fprintln(w, "\nFlags:")
		fmt.Fprint(w, c.Flags().FlagUsages())
	}
}

func isHelpFlag(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}
