package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"icelang/ast"
	"icelang/errformat"
	"icelang/eval"
	"icelang/lexer"
	"icelang/parser"
	"icelang/runtime"
	"icelang/sourcerange"
	"icelang/stdlib"
	"icelang/value"
)

// replCmd implements the interactive session: a chzyer/readline
// session with history, Ctrl-C handling, and the help/exit/clear/
// restart/debug meta-commands.
type replCmd struct {
	debug bool
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive icelang session" }
func (*replCmd) Usage() string {
	return `repl [-d]:
  Start an interactive icelang session.
`
}

func (r *replCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.debug, "d", false, "print each entered line's AST before evaluating")
	f.BoolVar(&r.debug, "debug-info", false, "print each entered line's AST before evaluating")
}

const replMetaHelp = `Meta-commands:
  help     show this message
  exit     end the session
  clear    clear the screen
  restart  discard all bindings and start a fresh session
  debug    toggle AST printing before each line is evaluated
`

func (r *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".icelang_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            ">>> ",
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "repl: failed to start: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	_, progArgs := splitProgArgs(f.Args())
	fmt.Fprintln(rl.Stdout(), "Welcome to icelang!")
	runREPL(rl, progArgs, r.debug)
	return subcommands.ExitSuccess
}

func runREPL(rl *readline.Instance, progArgs []string, debug bool) {
	rt := runtime.New(progArgs)
	state := eval.NewRuntimeState(rt)
	ev := eval.New(state, stdlib.Table())

	lastWasEmptyInterrupt := false

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(strings.TrimSpace(line)) == 0 {
				if lastWasEmptyInterrupt {
					return
				}
				lastWasEmptyInterrupt = true
				continue
			}
			lastWasEmptyInterrupt = false
			continue
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			fmt.Fprintln(rl.Stderr(), err)
			return
		}
		lastWasEmptyInterrupt = false

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit":
			return
		case "help":
			fmt.Fprint(rl.Stdout(), replMetaHelp)
			continue
		case "clear":
			fmt.Fprint(rl.Stdout(), "\x1b[2J\x1b[H")
			continue
		case "restart":
			state = eval.NewRuntimeState(rt)
			ev = eval.New(state, stdlib.Table())
			fmt.Fprintln(rl.Stdout(), "session restarted")
			continue
		case "debug":
			debug = !debug
			fmt.Fprintf(rl.Stdout(), "debug printing %s\n", onOff(debug))
			continue
		}

		evalREPLLine(rl, ev, rt, line, debug)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// evalREPLLine lexes, parses, and evaluates one entered line against
// the session's persistent RuntimeState, storing the line's source
// text in the runtime's arena so any SourceRange built from it (e.g.
// inside a stack trace) outlives this call.
func evalREPLLine(rl *readline.Instance, ev *eval.Evaluator, rt *runtime.Runtime, line string, debug bool) {
	stored := rt.Arena.Add(line)

	toks, lexErr := lexer.New(stored, "<repl>").Scan()
	if lexErr != nil {
		le := lexErr.(*lexer.LexError)
		fmt.Fprintln(rl.Stderr(), errformat.Format(errformat.Syntax, le.Error(), le.Pos, nil))
		return
	}

	eofPos := sourcerange.New(stored, "<repl>", len(stored), len(stored))
	prog, parseErr := parser.New(toks, eofPos).Parse()
	if parseErr != nil {
		pe := parseErr.(*parser.ParseError)
		fmt.Fprintln(rl.Stderr(), errformat.Format(errformat.Syntax, pe.Error(), pe.Pos, nil))
		return
	}

	if debug {
		if j, err := parser.PrintASTJSON(prog.Statements); err == nil {
			fmt.Fprintln(rl.Stdout(), j)
		}
	}

	if runErr := ev.Run(prog.Statements); runErr != nil {
		if re, ok := runErr.(*eval.RuntimeError); ok {
			fmt.Fprintln(rl.Stderr(), re.Format())
		} else {
			fmt.Fprintln(rl.Stderr(), runErr.Error())
		}
		return
	}

	if len(prog.Statements) == 0 {
		return
	}
	if _, ok := prog.Statements[len(prog.Statements)-1].(ast.ExpressionStatement); ok {
		fmt.Fprintln(rl.Stdout(), value.Display(ev.State.MostRecentValue))
	}
}
