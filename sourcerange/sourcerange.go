// Package sourcerange locates a contiguous span of characters within a
// named source text, and renders that span for error messages.
package sourcerange

import (
	"fmt"
	"unicode/utf8"
)

// SourceRange is a byte-offset span `[Start, End]` (both inclusive) into
// Source, which must outlive every SourceRange built from it — callers
// typically hand in a string owned by a source arena rather than a
// transient slice.
type SourceRange struct {
	Source string
	Name   string
	Start  int // inclusive byte offset
	End    int // inclusive byte offset
}

// New constructs a SourceRange over source[start:end+1].
func New(source, name string, start, end int) SourceRange {
	if start > end || end >= len(source) {
		panic(fmt.Sprintf("sourcerange: invalid range [%d,%d] over %d-byte source", start, end, len(source)))
	}
	return SourceRange{Source: source, Name: name, Start: start, End: end}
}

// Read returns the slice of Source this range covers.
func (r SourceRange) Read() string {
	return r.Source[r.Start : r.End+1]
}

func lineOf(source string, byteIndex int) int {
	line := 1
	for i := 0; i < byteIndex && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}
	return line
}

// colOf counts characters (UTF-8 runes), not bytes; an index inside a
// multi-byte character gets that character's column.
func colOf(source string, byteIndex int) int {
	col := 1
	for i := 0; i < byteIndex && i < len(source); i++ {
		if source[i] == '\n' {
			col = 1
		} else if utf8.RuneStart(source[i]) {
			col++
		}
	}
	if byteIndex < len(source) && !utf8.RuneStart(source[byteIndex]) {
		col--
	}
	return col
}

// StartLine returns the 1-indexed line the range starts on.
func (r SourceRange) StartLine() int { return lineOf(r.Source, r.Start) }

// EndLine returns the 1-indexed line the range ends on.
func (r SourceRange) EndLine() int { return lineOf(r.Source, r.End) }

// StartCol returns the 1-indexed column the range starts on.
func (r SourceRange) StartCol() int { return colOf(r.Source, r.Start) }

// EndCol returns the 1-indexed column the range ends on.
func (r SourceRange) EndCol() int { return colOf(r.Source, r.End) }

// ExtendedTo returns the smallest range covering both r and other. Both
// must share the same Source/Name.
func (r SourceRange) ExtendedTo(other SourceRange) SourceRange {
	out := r
	out.ExtendTo(other)
	return out
}

// ExtendTo mutates r in place to cover other as well.
func (r *SourceRange) ExtendTo(other SourceRange) {
	if other.Start < r.Start {
		r.Start = other.Start
	}
	if other.End > r.End {
		r.End = other.End
	}
}

// String renders the range as "<name> line L, col C[ to [line L', ]col C']",
// matching the original implementation's three display shapes.
func (r SourceRange) String() string {
	startLine, endLine := r.StartLine(), r.EndLine()
	startCol, endCol := r.StartCol(), r.EndCol()

	switch {
	case startLine == endLine && startCol == endCol:
		return fmt.Sprintf("%s line %d, col %d", r.Name, startLine, startCol)
	case startLine == endLine:
		return fmt.Sprintf("%s line %d, col %d to %d", r.Name, startLine, startCol, endCol)
	default:
		return fmt.Sprintf("%s line %d, col %d to line %d, col %d", r.Name, startLine, startCol, endLine, endCol)
	}
}
