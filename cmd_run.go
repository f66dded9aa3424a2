package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"icelang/errformat"
	"icelang/eval"
	"icelang/lexer"
	"icelang/parser"
	"icelang/runtime"
	"icelang/sourcerange"
	"icelang/stdlib"
)

// runCmd implements `icelang run FILE [-- PROG_ARGS...]`, driving the
// lexer/parser's Scan/Parse pipeline and the eval package's evaluator.
type runCmd struct {
	debug bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Execute an icelang source file" }
func (*runCmd) Usage() string {
	return `run [-d] FILE [-- PROG_ARGS...]:
  Execute an icelang source file.
`
}

func (r *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.debug, "d", false, "print the parsed AST before evaluating")
	f.BoolVar(&r.debug, "debug-info", false, "print the parsed AST before evaluating")
}

func (r *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	positional, progArgs := splitProgArgs(f.Args())
	if len(positional) < 1 {
		fmt.Fprintln(os.Stderr, "run: no source file provided")
		return subcommands.ExitUsageError
	}
	filename := positional[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: failed to read %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	rt := runtime.New(progArgs)
	if runProgramText(string(data), filename, rt, r.debug) != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// splitProgArgs separates a subcommand's positional arguments from any
// trailing `-- PROG_ARGS...` the spec's CLI surface passes through to
// the running program's args() builtin.
func splitProgArgs(args []string) (positional, progArgs []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// runProgramText lexes, parses, and evaluates src, reporting any
// syntax or runtime error to stderr in the shared errformat rendering.
// Returns the error, if any, so callers can set the process exit code.
func runProgramText(src, name string, rt *runtime.Runtime, debug bool) error {
	stored := rt.Arena.Add(src)

	toks, lexErr := lexer.New(stored, name).Scan()
	if lexErr != nil {
		le := lexErr.(*lexer.LexError)
		reportSyntaxError(le.Pos, le.Error())
		return lexErr
	}

	eofPos := sourcerange.New(stored, name, len(stored), len(stored))
	prog, parseErr := parser.New(toks, eofPos).Parse()
	if parseErr != nil {
		pe := parseErr.(*parser.ParseError)
		reportSyntaxError(pe.Pos, pe.Error())
		return parseErr
	}

	if debug {
		if j, err := parser.PrintASTJSON(prog.Statements); err == nil {
			fmt.Fprintln(os.Stderr, j)
		}
	}

	state := eval.NewRuntimeState(rt)
	ev := eval.New(state, stdlib.Table())
	if runErr := ev.Run(prog.Statements); runErr != nil {
		if re, ok := runErr.(*eval.RuntimeError); ok {
			fmt.Fprintln(os.Stderr, re.Format())
		} else {
			fmt.Fprintln(os.Stderr, runErr.Error())
		}
		return runErr
	}
	return nil
}

// reportSyntaxError prints a lex/parse error using the same header +
// source-line + caret rendering a RuntimeError uses, with no stack
// trace (static errors have no call stack).
func reportSyntaxError(pos sourcerange.SourceRange, message string) {
	fmt.Fprintln(os.Stderr, errformat.Format(errformat.Syntax, message, pos, nil))
}
