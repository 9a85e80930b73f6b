package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coregx/strmatch"
	"github.com/coregx/strmatch/engine"
)

var matchQuiet bool

var matchCmd = &cobra.Command{
	Use:   "match <pattern> [file]",
	Short: "Match input lines against a pattern",
	Long: `Compile a pattern and run it against each line of the input file
(or stdin), printing the captures of every matching line.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVarP(&matchQuiet, "quiet", "q", false, "Only print matching lines, no captures")
}

// styles holds the color formatters for match output.
type styles struct {
	hit  *color.Color
	miss *color.Color
	name *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		hit:  color.New(color.Bold, color.FgGreen),
		miss: color.New(color.FgHiBlack),
		name: color.New(color.FgHiBlue),
	}
	if !enabled {
		s.hit.DisableColor()
		s.miss.DisableColor()
		s.name.DisableColor()
	}
	return s
}

func runMatch(cmd *cobra.Command, args []string) error {
	p, err := strmatch.Compile(args[0])
	if err != nil {
		return err
	}

	st := newStyles(!noColor)
	return inputLines(args[1:], func(line []byte) error {
		caps, ok := p.Match(line)
		if !ok {
			if !matchQuiet {
				st.miss.Printf("no match  %s\n", line)
			}
			return nil
		}
		st.hit.Printf("match     %s\n", line)
		if !matchQuiet {
			printCaptures(st, caps)
		}
		return nil
	})
}

func printCaptures(st *styles, caps *engine.Captures) {
	for _, name := range caps.Names() {
		if b, err := caps.Byte(name); err == nil {
			fmt.Printf("  %s = %q\n", st.name.Sprint(name), b)
			continue
		}
		s, err := caps.Slice(name)
		if err != nil {
			continue
		}
		fmt.Printf("  %s = %q\n", st.name.Sprint(name), s)
	}
}
