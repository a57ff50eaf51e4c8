// package main is the main executable for the compilerlab teaching CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/joaofaria/compilerlab/pkg/automata"
	"github.com/joaofaria/compilerlab/pkg/parser"
	"github.com/joaofaria/compilerlab/pkg/render"
	"github.com/joaofaria/compilerlab/pkg/scanner"
)

// flag names
const (
	traceFlagName = "trace"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	good    = color.New(color.FgGreen)
	bad     = color.New(color.FgRed)
)

// gitQuickReference is the static Git cheat sheet shown by the git
// subcommand.
const gitQuickReference = `git init
git add .
git commit -m "Compilers assignment"
git branch -M main
git remote add origin https://github.com/user/repository.git
git push -u origin main`

func main() {
	app := &cli.App{
		Name:        "compilerlab",
		Usage:       "teaching toolkit for lexing, DFA simulation and expression parsing",
		Description: "compilerlab demonstrates classic compiler front-end techniques on the command line.",
		Commands: []*cli.Command{
			parseCommand(),
			tokensCommand(),
			dfaCommand(),
			gitCommand(),
		},
	}
	_ = app.Run(os.Args)
}

// parseCommand parses an arithmetic expression and prints the AST outline.
func parseCommand() *cli.Command {
	return &cli.Command{
		Name:        "parse",
		Usage:       "compilerlab parse 'a + 3*(b - 2)'",
		Description: "parse builds and prints the AST of an arithmetic expression.",
		Action: func(ctx *cli.Context) error {
			input := strings.Join(ctx.Args().Slice(), " ")
			if input == "" {
				return cli.Exit("parse: missing expression argument", 1)
			}

			heading.Println("=== PARSER ===")
			expr, err := parser.Parse(input)
			if err != nil {
				bad.Printf("Error: %v\n", err)
				return cli.Exit("", 1)
			}
			return render.Fprint(ctx.App.Writer, expr.AST())
		},
	}
}

// tokensCommand runs the classifying tokenizer over a code fragment.
func tokensCommand() *cli.Command {
	return &cli.Command{
		Name:        "tokens",
		Usage:       "compilerlab tokens 'if (x1 >= 10) return x1;'",
		Description: "tokens classifies a code fragment into lexical tokens.",
		Action: func(ctx *cli.Context) error {
			input := strings.Join(ctx.Args().Slice(), " ")
			if input == "" {
				return cli.Exit("tokens: missing code argument", 1)
			}

			heading.Println("=== TOKENIZER ===")
			for _, t := range scanner.Scan(input) {
				line := fmt.Sprintf("  %-8s %q", t.Kind, t.Value)
				if t.Kind == scanner.KindError {
					bad.Println(line)
				} else {
					good.Println(line)
				}
			}
			return nil
		},
	}
}

// dfaCommand checks strings against the identifier DFA.
func dfaCommand() *cli.Command {
	return &cli.Command{
		Name:        "dfa",
		Usage:       "compilerlab dfa -- --trace my_var 9lives",
		Description: "dfa simulates the identifier automaton on each argument.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  traceFlagName,
				Usage: "print the sequence of visited states",
			},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() == 0 {
				return cli.Exit("dfa: missing input strings", 1)
			}

			heading.Println("=== DFA SIMULATOR ===")
			dfa := automata.Identifier()
			for _, arg := range ctx.Args().Slice() {
				if dfa.Accepts(arg) {
					good.Printf("  %-20q ACCEPTED\n", arg)
				} else {
					bad.Printf("  %-20q REJECTED\n", arg)
				}
				if ctx.Bool(traceFlagName) {
					fmt.Fprintf(ctx.App.Writer, "    states: %v\n", dfa.Trace(arg))
				}
			}
			return nil
		},
	}
}

// gitCommand prints the static Git quick reference.
func gitCommand() *cli.Command {
	return &cli.Command{
		Name:        "git",
		Usage:       "compilerlab git",
		Description: "git prints a quick reference of everyday Git commands.",
		Action: func(ctx *cli.Context) error {
			heading.Println("=== GIT COMMANDS ===")
			fmt.Fprintln(ctx.App.Writer, gitQuickReference)
			return nil
		},
	}
}
