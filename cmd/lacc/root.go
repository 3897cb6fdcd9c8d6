package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lacc",
	Short: "Build lexers and LALR(1) parsers and run them over sample input",
	Long: `lacc provides three features:
- Compiles a set of regex patterns into a minimized DFA and tokenizes text with it.
- Compiles a set of grammar productions into an LALR(1) table and parses a token stream with it.
- Runs an interactive REPL over the bundled arithmetic-expression demo grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
