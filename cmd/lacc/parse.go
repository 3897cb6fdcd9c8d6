package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/haleyrc/lacc"
	"github.com/haleyrc/lacc/lr"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse [file]",
		Short:   "Lex and parse input against the bundled demo arithmetic grammar",
		Example: `  printf "id add lp id mul id rp" | lacc parse`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	_, table, err := demoParser()
	if err != nil {
		return err
	}
	printConflicts(table)

	accepted, err := parseDemoInput(src, table)
	if err != nil {
		return err
	}
	if accepted {
		pterm.Success.Println("accepted")
	} else {
		pterm.Error.Println("rejected")
	}
	return nil
}

// parseDemoInput lexes src with the demo lexer and drives it through table,
// the wiring lacc.BuildLexer/lacc.BuildParser exist to make a one-call
// affair for a caller building both pipelines at once.
func parseDemoInput(src string, table *lr.Table) (bool, error) {
	d, err := demoLexer()
	if err != nil {
		return false, err
	}

	toks := d.Tokenize(src)
	symbols, ok := tokensToSymbols(toks)
	if !ok {
		return false, fmt.Errorf("lex error in input")
	}

	return lacc.Parse(table, symbols, nil)
}

func printConflicts(table *lr.Table) {
	if len(table.ShiftReduceConflicts) == 0 && len(table.ReduceReduceConflicts) == 0 {
		return
	}
	for _, c := range table.ShiftReduceConflicts {
		pterm.Warning.Printf("shift/reduce conflict in state %d on %v, resolved by shift\n", c.State, c.Symbol)
	}
	for _, c := range table.ReduceReduceConflicts {
		pterm.Warning.Printf("reduce/reduce conflict in state %d on %v, resolved by production order\n", c.State, c.Symbol)
	}
}
