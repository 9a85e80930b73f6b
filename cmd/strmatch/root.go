package main

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "strmatch",
	Short: "Compile and run fixed-layout byte patterns",
	Long: `strmatch compiles compact pattern descriptions into deterministic
matchers over fixed byte sequences and reports named captures on success.

Patterns combine literal runs ("abc", 'x'), single-byte wildcards (_ or a
capture name), fixed-count repeats ("ab"x2, _x4), and one optional trailing
rest capture ([rest] or [_]).`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(dispatchCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// inputLines reads newline-delimited input from the named file, or stdin
// when no file argument was given, and invokes fn per line.
func inputLines(args []string, fn func(line []byte) error) error {
	var r io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := fn(scanner.Bytes()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
