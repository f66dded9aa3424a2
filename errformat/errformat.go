// Package errformat renders interpreter errors the way the language's
// CLI reports them: a wrapped header, the offending source line with a
// caret highlight, and an optional stack trace. Positions are walked
// rune-by-rune rather than byte-by-byte so multi-byte UTF-8 source
// still aligns correctly.
package errformat

import (
	"strings"

	"icelang/scope"
	"icelang/sourcerange"
)

// Kind is the category shown in an error's header ("Syntax Error: ...").
type Kind int

const (
	Syntax Kind = iota
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax"
	case Runtime:
		return "Runtime"
	default:
		return "Unknown"
	}
}

const (
	prefix                = "| "
	maxLen                = 80
	multilineHeaderIndent = "  "
	trimChars             = "..."
	cutoutSep             = " ... "
	arrChar               = "^"
	spillChars            = ">>>"
	spacingChar           = " "
	cutoutLineStartLen    = 20
	cutoutLeadupLen       = 15
	maxLenAfterPrefix     = maxLen - len(prefix)
)

// StackTrace is an ordered list of call frames, most recent call first,
// appended to by the evaluator at each call boundary.
type StackTrace struct {
	frames []scope.Frame
}

// AddTop pushes a frame to the front (most recent call).
func (s *StackTrace) AddTop(f scope.Frame) {
	s.frames = append([]scope.Frame{f}, s.frames...)
}

// AddBottom pushes a frame to the back (oldest call).
func (s *StackTrace) AddBottom(f scope.Frame) {
	s.frames = append(s.frames, f)
}

func (s *StackTrace) String() string {
	var b strings.Builder
	b.WriteString("Stack trace (most recent call at the top):\n")
	if len(s.frames) == 0 {
		b.WriteString("<empty>\n")
		return b.String()
	}
	for _, f := range s.frames {
		b.WriteString("^ ")
		b.WriteString(f.String())
		b.WriteString("\n")
	}
	return b.String()
}

// writeHeader wraps "<Kind> Error: <description>" to maxLen columns,
// re-indenting continuation lines under the "| " prefix.
func writeHeader(b *strings.Builder, kind Kind, description string) {
	headerBuf := kind.String() + " Error: "
	multiline := false
	runes := []rune(description)
	i := 0
	for i < len(runes) {
		if runes[i] == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
			i++
		}
		if runes[i] == '\n' {
			i++
			multiline = true
			b.WriteString(headerBuf)
			b.WriteString("\n")
			headerBuf = prefix + multilineHeaderIndent
			continue
		}

		if len([]rune(headerBuf)) >= maxLen {
			multiline = true
			b.WriteString(headerBuf)
			b.WriteString("\n")
			headerBuf = prefix + multilineHeaderIndent
		}

		headerBuf += string(runes[i])
		i++
	}
	if len([]rune(headerBuf)) > len(prefix) {
		b.WriteString(headerBuf)
		b.WriteString("\n")
	}
	if multiline {
		b.WriteString(prefix)
		b.WriteString("\n")
	}
}

// writeSourceHighlight renders the offending line plus a caret line
// beneath it, trimming and/or cutting out the middle of very long lines
// so the output never exceeds maxLen columns.
func writeSourceHighlight(b *strings.Builder, pos sourcerange.SourceRange) {
	startLineNumber := pos.StartLine()
	originalStartColumn := pos.StartCol() - 1
	originalEndColumn := pos.EndCol() - 1

	lines := strings.Split(pos.Source, "\n")
	originalLine := lines[startLineNumber-1]

	adjLine := strings.ReplaceAll(originalLine, "\t", "    ")
	lineRunes := []rune(originalLine)

	tabsBefore := func(n int) int {
		count := 0
		for i := 0; i < n && i < len(lineRunes); i++ {
			if lineRunes[i] == '\t' {
				count++
			}
		}
		return count
	}
	adjStartColumn := originalStartColumn + tabsBefore(originalStartColumn)*3
	adjEndColumn := originalEndColumn + tabsBefore(originalEndColumn+1)*3

	adjRunes := []rune(adjLine)
	lenLine := len(adjRunes)
	lenBefore := adjStartColumn
	lenErr := adjEndColumn - adjStartColumn + 1
	lenAfter := lenLine - adjEndColumn - 1

	var outLine, outErr string

	take := func(s []rune, n int) string {
		if n > len(s) {
			n = len(s)
		}
		return string(s[:n])
	}
	skip := func(s []rune, n int) []rune {
		if n > len(s) {
			n = len(s)
		}
		return s[n:]
	}

	switch {
	case lenLine <= maxLenAfterPrefix:
		outLine = adjLine
		outErr = strings.Repeat(spacingChar, lenBefore) + strings.Repeat(arrChar, lenErr)

	case lenBefore+lenErr+len(trimChars) <= maxLenAfterPrefix:
		outLine = take(adjRunes, maxLenAfterPrefix-len(trimChars)) + trimChars
		outErr = strings.Repeat(spacingChar, lenBefore) +
			strings.Repeat(arrChar, lenErr) +
			strings.Repeat(spacingChar, maxLenAfterPrefix-(lenBefore+lenErr+len(trimChars))) +
			trimChars

	case cutoutLineStartLen+len(cutoutSep)+cutoutLeadupLen+lenErr+lenAfter <= maxLenAfterPrefix:
		outLine = take(adjRunes, cutoutLineStartLen) + cutoutSep + string(skip(adjRunes, lenBefore-cutoutLeadupLen))
		outErr = strings.Repeat(spacingChar, cutoutLineStartLen) + cutoutSep +
			strings.Repeat(spacingChar, cutoutLeadupLen) + strings.Repeat(arrChar, lenErr)

	case cutoutLineStartLen+len(cutoutSep)+cutoutLeadupLen+lenErr+len(trimChars) <= maxLenAfterPrefix:
		lenShownAfterErr := maxLenAfterPrefix - (cutoutLineStartLen + len(cutoutSep) + cutoutLeadupLen + lenErr + len(trimChars))
		rest := skip(adjRunes, lenBefore-cutoutLeadupLen)
		restTake := cutoutLeadupLen + lenErr + lenShownAfterErr
		if restTake > len(rest) {
			restTake = len(rest)
		}
		outLine = take(adjRunes, cutoutLineStartLen) + cutoutSep + string(rest[:restTake]) + trimChars
		outErr = strings.Repeat(spacingChar, cutoutLineStartLen) + cutoutSep +
			strings.Repeat(spacingChar, cutoutLeadupLen) + strings.Repeat(arrChar, lenErr) +
			strings.Repeat(spacingChar, lenShownAfterErr) + trimChars

	case lenBefore <= cutoutLineStartLen+len(cutoutSep)+cutoutLeadupLen:
		outLine = take(adjRunes, maxLenAfterPrefix-len(trimChars)) + trimChars
		outErr = strings.Repeat(spacingChar, lenBefore) +
			strings.Repeat(arrChar, maxLenAfterPrefix-(lenBefore+len(trimChars))) +
			spillChars

	default:
		lenOfShownErr := maxLenAfterPrefix - (cutoutLineStartLen + len(cutoutSep) + cutoutLeadupLen + len(trimChars))
		rest := skip(adjRunes, lenBefore-cutoutLeadupLen)
		restTake := cutoutLeadupLen + lenOfShownErr
		if restTake > len(rest) {
			restTake = len(rest)
		}
		outLine = take(adjRunes, cutoutLineStartLen) + cutoutSep + string(rest[:restTake]) + trimChars
		outErr = strings.Repeat(spacingChar, cutoutLineStartLen) + cutoutSep +
			strings.Repeat(spacingChar, cutoutLeadupLen) + strings.Repeat(arrChar, lenOfShownErr) +
			spillChars
	}

	b.WriteString(prefix)
	b.WriteString(outLine)
	b.WriteString("\n")
	b.WriteString(prefix)
	b.WriteString(outErr)
}

// WriteError renders a complete error report into b. trace may be nil to
// omit the stack-trace footer (e.g. for syntax errors, which never have
// one).
func WriteError(b *strings.Builder, kind Kind, description string, pos sourcerange.SourceRange, trace *StackTrace) {
	writeHeader(b, kind, description)

	b.WriteString(prefix)
	b.WriteString(pos.String())
	b.WriteString("\n")
	b.WriteString(prefix)
	b.WriteString("\n")

	writeSourceHighlight(b, pos)

	if trace != nil {
		b.WriteString("\n")
		b.WriteString(prefix)
		for _, line := range strings.Split(strings.TrimSuffix(trace.String(), "\n"), "\n") {
			b.WriteString("\n")
			b.WriteString(prefix)
			b.WriteString(line)
		}
	}
}

// Format is a convenience wrapper around WriteError returning the
// rendered string directly.
func Format(kind Kind, description string, pos sourcerange.SourceRange, trace *StackTrace) string {
	var b strings.Builder
	WriteError(&b, kind, description, pos, trace)
	return b.String()
}
