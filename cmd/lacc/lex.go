package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "lex [file]",
		Short:   "Tokenize input against the bundled demo lexer",
		Example: `  printf "id add lp id mul id rp" | lacc lex`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runLex,
	}
	rootCmd.AddCommand(cmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	d, err := demoLexer()
	if err != nil {
		return err
	}

	toks := d.Tokenize(src)

	table := pterm.TableData{{"#", "TYPE", "LEXEME"}}
	errCount := 0
	for i, tok := range toks {
		if tok.IsError() {
			errCount++
		}
		table = append(table, []string{fmt.Sprintf("%d", i), tok.Type.Name, tok.Lexeme})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(table).Render(); err != nil {
		return err
	}

	if errCount > 0 {
		pterm.Error.Printf("%d lexical error token(s)\n", errCount)
	} else {
		pterm.Success.Println("no lexical errors")
	}
	return nil
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		b, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return "", fmt.Errorf("cannot open %s: %w", args[0], err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
