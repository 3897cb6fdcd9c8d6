package main

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/haleyrc/lacc/lr"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively lex and parse lines against the bundled demo grammar",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
	rootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	_, table, err := demoParser()
	if err != nil {
		return err
	}
	printConflicts(table)

	rl, err := readline.New("lacc> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println(`Type a token stream, e.g. "id add lp id mul id rp". Quit with ctrl-D.`)

	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		}
		if err != nil {
			return err
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		evalLine(line, table)
	}
	pterm.Info.Println("bye")
	return nil
}

func evalLine(line string, table *lr.Table) {
	accepted, err := parseDemoInput(line, table)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if accepted {
		pterm.Success.Println("accepted")
	} else {
		pterm.Error.Println("rejected")
	}
}
