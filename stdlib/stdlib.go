// Package stdlib implements icelang's fixed standard library: the
// table of built-in functions callable by bare name, plus string,
// random, and dict-insertion helpers. Each function matches
// eval.StdlibFunc's signature, dispatching on Value's concrete type via
// a Go type switch and reporting failures as eval.RuntimeError returns
// rather than panicking.
package stdlib

import "icelang/eval"

// Table builds the name -> built-in map the Evaluator dispatches
// bare-identifier calls through.
func Table() map[string]eval.StdlibFunc {
	return map[string]eval.StdlibFunc{
		// io.go
		"print":          islPrint,
		"println":        islPrintln,
		"eprint":         islEprint,
		"eprintln":       islEprintln,
		"input":          islInput,
		"args":           islArgs,
		"read_file":      islReadFile,
		"read_file_bin":  islReadFileBin,
		"write_file":     islWriteFile,
		"write_file_bin": islWriteFileBin,

		// collections.go
		"len":           islLen,
		"push":          islPush,
		"pop":           islPop,
		"push_start":    islPushStart,
		"pop_start":     islPopStart,
		"contains_key":  islContainsKey,
		"remove_entry":  islRemoveEntry,
		"keys":          islKeys,
		"insert":        islInsert,

		// misc.go
		"from_codepoint": islFromCodepoint,
		"to_codepoint":   islToCodepoint,
		"typeof":         islTypeof,
		"range":          islRange,

		// time.go
		"now":   islNow,
		"sleep": islSleep,

		// error.go
		"error":       islError,
		"assert":      islAssert,
		"todo":        islTodo,
		"unimplemented": islUnimplemented,
		"unreachable": islUnreachable,

		// string.go
		"to_upper": islToUpper,
		"to_lower": islToLower,
		"trim":     islTrim,
		"split":    islSplit,
		"join":     islJoin,
		"contains": islContains,
		"replace":  islReplace,

		// random.go
		"random":     islRandom,
		"random_int": islRandomInt,
	}
}
