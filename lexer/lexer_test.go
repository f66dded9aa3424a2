package lexer

import (
	"testing"

	"icelang/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := New(src, "test.ice").Scan()
	if err != nil {
		t.Fatalf("Scan(%q) error: %v", src, err)
	}
	return toks
}

func TestSimpleTokens(t *testing.T) {
	toks := scanAll(t, "let x = 8bFF;")
	if len(toks) != 5 {
		t.Fatalf("got %d tokens, want 5: %v", len(toks), toks)
	}
	if toks[0].Kind != token.Keyword || toks[0].KeywordKind != token.KwLet {
		t.Fatalf("token[0] = %v", toks[0])
	}
	if toks[3].Kind != token.Literal || toks[3].LitKind != token.LiteralByte || toks[3].ByteVal != 0xFF {
		t.Fatalf("token[3] = %v", toks[3])
	}
}

func TestPositionReadInvariant(t *testing.T) {
	src := `let name = "hi";`
	toks := scanAll(t, src)
	for _, tok := range toks {
		if tok.Kind == token.FStringSection {
			continue // section text excludes delimiters; not a verbatim slice
		}
		if tok.Kind == token.Literal && tok.LitKind == token.LiteralString {
			// string literal's raw read includes the surrounding quotes
			read := tok.Pos.Read()
			if read[0] != '"' || read[len(read)-1] != '"' {
				t.Fatalf("string token read() = %q, want quoted", read)
			}
			continue
		}
		if got := tok.Pos.Read(); got == "" {
			t.Fatalf("token %v has empty Read()", tok)
		}
	}
}

func TestFormattedStringSegments(t *testing.T) {
	toks := scanAll(t, `f"a{1}b{2}c"`)
	var parts []token.FStringPart
	for _, tok := range toks {
		if tok.Kind == token.FStringSection {
			parts = append(parts, tok.FStringPart)
		}
	}
	want := []token.FStringPart{token.FStringStart, token.FStringContinuation, token.FStringEnd}
	if len(parts) != len(want) {
		t.Fatalf("parts = %v, want %v", parts, want)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Fatalf("parts[%d] = %v, want %v", i, parts[i], want[i])
		}
	}
}

func TestFormattedStringCompleteWithNoInterpolation(t *testing.T) {
	toks := scanAll(t, `f"no interpolation"`)
	if len(toks) != 1 || toks[0].FStringPart != token.FStringComplete {
		t.Fatalf("toks = %v", toks)
	}
}

func TestNestedDictLiteralInsideInterpolation(t *testing.T) {
	// The `{` of the dict literal must not be mistaken for closing the
	// interpolation expression.
	toks := scanAll(t, `f"{ {"a": 1}["a"] }"`)
	var ends int
	for _, tok := range toks {
		if tok.Kind == token.FStringSection && tok.FStringPart == token.FStringComplete {
			ends++
		}
	}
	if ends != 0 {
		t.Fatalf("expected no Complete section (there is an interpolation): %v", toks)
	}
}

func TestMaximalMunchPunctuators(t *testing.T) {
	toks := scanAll(t, "a **= b")
	if toks[1].Kind != token.Punctuator || toks[1].PunctuatorKind != token.PStarStarEq {
		t.Fatalf("toks[1] = %v, want **=", toks[1])
	}
}

func TestUnclosedStringIsFatal(t *testing.T) {
	_, err := New(`"abc`, "t").Scan()
	if err == nil {
		t.Fatal("expected an error for unclosed string")
	}
}

func TestIllegalCharacter(t *testing.T) {
	_, err := New("let x = @;", "t").Scan()
	if err == nil {
		t.Fatal("expected an illegal-character error")
	}
	lexErr, ok := err.(*LexError)
	if !ok || lexErr.Kind != IllegalChar {
		t.Fatalf("err = %v, want IllegalChar", err)
	}
}
