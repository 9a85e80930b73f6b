package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coregx/strmatch"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pattern>",
	Short: "Show the compiled form of a pattern",
	Long: `Compile a pattern and print its static layout: required input
length, rest behavior, literal prefix, and the capture table with the kind
(byte or slice) of every bound name.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	p, err := strmatch.Compile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pattern: %s\n", p.String())
	if p.HasRest() {
		fmt.Fprintf(out, "length:  >= %d bytes (rest capture)\n", p.MinLen())
	} else {
		fmt.Fprintf(out, "length:  exactly %d bytes\n", p.MinLen())
	}
	if prefix := p.LiteralPrefix(); len(prefix) > 0 {
		fmt.Fprintf(out, "prefix:  %q\n", prefix)
	}

	names := p.CaptureNames()
	if len(names) == 0 {
		fmt.Fprintln(out, "captures: none")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CAPTURE\tKIND")
	for _, name := range names {
		kind, _ := p.CaptureKind(name)
		fmt.Fprintf(w, "%s\t%s\n", name, kind)
	}
	return w.Flush()
}
