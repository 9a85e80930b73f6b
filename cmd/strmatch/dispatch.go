package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/strmatch/dispatch"
)

var dispatchRulesPath string

var dispatchCmd = &cobra.Command{
	Use:   "dispatch [file]",
	Short: "Dispatch input lines across a YAML ruleset",
	Long: `Load a set of named patterns from a YAML rules file and report,
for each line of the input file (or stdin), the first rule that matches.

Rules file format:

  rules:
    - name: get-request
      pattern: '"GET " [path]'
    - name: put-request
      pattern: '"PUT " [path]'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDispatch,
}

func init() {
	dispatchCmd.Flags().StringVar(&dispatchRulesPath, "rules", "", "Path to rules YAML file (required)")
	dispatchCmd.MarkFlagRequired("rules")
}

func runDispatch(cmd *cobra.Command, args []string) error {
	set, err := dispatch.LoadRulesFile(dispatchRulesPath)
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	st := newStyles(!noColor)
	return inputLines(args, func(line []byte) error {
		res, ok := set.Match(line)
		if !ok {
			st.miss.Printf("no match  %s\n", line)
			return nil
		}
		st.hit.Printf("%-9s %s\n", res.Name, line)
		printCaptures(st, res.Captures)
		return nil
	})
}
