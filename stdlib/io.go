package stdlib

// print/println/eprint/eprintln/input/args/read_file(_bin)/write_file(_bin),
// routed through RuntimeState.RT.IO so tests can substitute in-memory
// buffers.

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"icelang/eval"
	"icelang/sourcerange"
	"icelang/value"
)

func islPrint(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "print", len(args))
	}
	fmt.Fprint(state.RT.IO.Stdout, value.Display(args[0]))
	flush(state.RT.IO.Stdout)
	return value.Null{}, nil
}

func islPrintln(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	switch len(args) {
	case 0:
		fmt.Fprintln(state.RT.IO.Stdout)
	case 1:
		fmt.Fprintln(state.RT.IO.Stdout, value.Display(args[0]))
	default:
		return nil, arityError(pos, "println", len(args))
	}
	flush(state.RT.IO.Stdout)
	return value.Null{}, nil
}

func islEprint(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "eprint", len(args))
	}
	fmt.Fprint(state.RT.IO.Stderr, value.Display(args[0]))
	flush(state.RT.IO.Stderr)
	return value.Null{}, nil
}

func islEprintln(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	switch len(args) {
	case 0:
		fmt.Fprintln(state.RT.IO.Stderr)
	case 1:
		fmt.Fprintln(state.RT.IO.Stderr, value.Display(args[0]))
	default:
		return nil, arityError(pos, "eprintln", len(args))
	}
	flush(state.RT.IO.Stderr)
	return value.Null{}, nil
}

// flush mirrors io.rs's explicit stdout/stderr flush after every write;
// only *os.File backs a real flushable stream, so this is a no-op over
// the in-memory buffers tests substitute via RuntimeState.RT.IO.
func flush(w io.Writer) {
	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
	}
}

func islInput(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 0 {
		return nil, arityError(pos, "input", len(args))
	}
	reader := bufio.NewReader(state.RT.IO.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return value.Null{}, nil
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return value.String{V: line}, nil
}

func islArgs(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 0 {
		return nil, arityError(pos, "args", len(args))
	}
	items := make([]value.Value, len(state.RT.Args))
	for i, a := range state.RT.Args {
		items[i] = value.String{V: a}
	}
	return value.NewList(items), nil
}

func islReadFile(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "read_file", len(args))
	}
	path, ok := args[0].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "read_file", "first", "a string", args[0])
	}
	contents, err := os.ReadFile(path.V)
	if err != nil {
		return value.Null{}, nil
	}
	return value.String{V: string(contents)}, nil
}

func islReadFileBin(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError(pos, "read_file_bin", len(args))
	}
	path, ok := args[0].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "read_file_bin", "first", "a string", args[0])
	}
	contents, err := os.ReadFile(path.V)
	if err != nil {
		return value.Null{}, nil
	}
	items := make([]value.Value, len(contents))
	for i, b := range contents {
		items[i] = value.Byte{V: b}
	}
	return value.NewList(items), nil
}

func islWriteFile(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError(pos, "write_file", len(args))
	}
	path, ok := args[0].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "write_file", "first", "a string", args[0])
	}
	contents, ok := args[1].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "write_file", "second", "a string", args[1])
	}
	err := os.WriteFile(path.V, []byte(contents.V), 0o644)
	return value.Bool{V: err == nil}, nil
}

func islWriteFileBin(args []value.Value, pos sourcerange.SourceRange, state *eval.RuntimeState) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError(pos, "write_file_bin", len(args))
	}
	path, ok := args[0].(value.String)
	if !ok {
		return nil, wrongArgType(pos, "write_file_bin", "first", "a string", args[0])
	}
	list, ok := args[1].(*value.List)
	if !ok {
		return nil, wrongArgType(pos, "write_file_bin", "second", "a list", args[1])
	}
	bytes := make([]byte, len(list.Items))
	for i, item := range list.Items {
		b, ok := item.(value.Byte)
		if !ok {
			return nil, eval.AssertionError(pos, fmt.Sprintf(
				"`write_file_bin(...)` expects a list containing only bytes as its second argument, but the list contained a value of type %s",
				item.TypeName(),
			))
		}
		bytes[i] = b.V
	}
	err := os.WriteFile(path.V, bytes, 0o644)
	return value.Bool{V: err == nil}, nil
}
