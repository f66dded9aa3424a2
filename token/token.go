// Package token defines the lexical token model: a tagged union of five
// shapes (identifier, typed literal, formatted-string-literal section,
// keyword, punctuator), each carrying a SourceRange.
package token

import (
	"fmt"
	"math/big"

	"icelang/sourcerange"
)

// Kind distinguishes the five token shapes.
type Kind int

const (
	Ident Kind = iota
	Literal
	FStringSection
	Keyword
	Punctuator
)

// LiteralKind distinguishes the typed literal payloads a Literal token
// can carry.
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralByte
	LiteralFloat
	LiteralString
	LiteralBool
	LiteralNull
	LiteralInfinity
	LiteralNaN
)

// FStringPart distinguishes the four-way tag of a formatted-string
// literal section.
type FStringPart int

const (
	FStringStart FStringPart = iota
	FStringContinuation
	FStringEnd
	FStringComplete
)

func (p FStringPart) String() string {
	switch p {
	case FStringStart:
		return "Start"
	case FStringContinuation:
		return "Continuation"
	case FStringEnd:
		return "End"
	case FStringComplete:
		return "Complete"
	default:
		return "?"
	}
}

// KeywordKind enumerates reserved words.
type KeywordKind int

const (
	KwIf KeywordKind = iota
	KwElse
	KwLoop
	KwWhile
	KwFor
	KwIn
	KwMatch
	KwBreak
	KwContinue
	KwReturn
	KwFn
	KwLet
	KwAs
)

var keywordText = map[KeywordKind]string{
	KwIf: "if", KwElse: "else", KwLoop: "loop", KwWhile: "while",
	KwFor: "for", KwIn: "in", KwMatch: "match", KwBreak: "break",
	KwContinue: "continue", KwReturn: "return", KwFn: "fn", KwLet: "let",
	KwAs: "as",
}

// Keywords maps keyword source text to its KeywordKind.
var Keywords = map[string]KeywordKind{}

func init() {
	for k, text := range keywordText {
		Keywords[text] = k
	}
}

// PunctuatorKind enumerates the fixed operator/separator set. Names
// follow the spec's operator listing; multi-character punctuators
// always win maximal munch in the lexer.
type PunctuatorKind int

const (
	PLParen PunctuatorKind = iota
	PRParen
	PLBrace
	PRBrace
	PLBracket
	PRBracket
	PComma
	PSemicolon
	PColon
	PDot
	PQuestion
	PFatArrow

	POrOr
	PAndAnd
	PPipe
	PCaret
	PAmp
	PShl
	PShr
	PPlus
	PMinus
	PStar
	PSlash
	PPercent
	PStarStar
	PBang

	PEqEq
	PNotEq
	PLt
	PGt
	PLe
	PGe

	PAssign
	PPlusEq
	PMinusEq
	PStarEq
	PSlashEq
	PPercentEq
	PStarStarEq
	PShlEq
	PShrEq
	PAmpEq
	PCaretEq
	PPipeEq
	PAndAndEq
	POrOrEq
)

var punctuatorText = map[PunctuatorKind]string{
	PLParen: "(", PRParen: ")", PLBrace: "{", PRBrace: "}",
	PLBracket: "[", PRBracket: "]", PComma: ",", PSemicolon: ";",
	PColon: ":", PDot: ".", PQuestion: "?", PFatArrow: "=>",
	POrOr: "||", PAndAnd: "&&", PPipe: "|", PCaret: "^", PAmp: "&",
	PShl: "<<", PShr: ">>", PPlus: "+", PMinus: "-", PStar: "*",
	PSlash: "/", PPercent: "%", PStarStar: "**", PBang: "!",
	PEqEq: "==", PNotEq: "!=", PLt: "<", PGt: ">", PLe: "<=", PGe: ">=",
	PAssign: "=", PPlusEq: "+=", PMinusEq: "-=", PStarEq: "*=",
	PSlashEq: "/=", PPercentEq: "%=", PStarStarEq: "**=", PShlEq: "<<=",
	PShrEq: ">>=", PAmpEq: "&=", PCaretEq: "^=", PPipeEq: "|=",
	PAndAndEq: "&&=", POrOrEq: "||=",
}

// Text returns the canonical source text of a punctuator.
func (p PunctuatorKind) Text() string { return punctuatorText[p] }

// Punctuators maps source text to PunctuatorKind; the lexer is
// responsible for trying longer candidates first (maximal munch).
var Punctuators = map[string]PunctuatorKind{}

func init() {
	for k, text := range punctuatorText {
		Punctuators[text] = k
	}
}

// Token is the flat representation of the five-shape tagged union: only
// one "payload" group of fields is meaningful, selected by Kind (and,
// for Literal/FStringSection, by the nested sub-kind).
type Token struct {
	Kind Kind
	Pos  sourcerange.SourceRange

	// Ident
	IdentName string

	// Literal
	LitKind   LiteralKind
	IntVal    *big.Int
	ByteVal   byte
	FloatVal  float64
	StringVal string
	BoolVal   bool

	// FStringSection
	FStringPart FStringPart
	FStringText string // post-escape section text

	// Keyword
	KeywordKind KeywordKind

	// Punctuator
	PunctuatorKind PunctuatorKind
}

func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("Ident(%s)", t.IdentName)
	case Literal:
		switch t.LitKind {
		case LiteralInt:
			return fmt.Sprintf("Int(%s)", t.IntVal.String())
		case LiteralByte:
			return fmt.Sprintf("Byte(%02X)", t.ByteVal)
		case LiteralFloat:
			return fmt.Sprintf("Float(%v)", t.FloatVal)
		case LiteralString:
			return fmt.Sprintf("String(%q)", t.StringVal)
		case LiteralBool:
			return fmt.Sprintf("Bool(%v)", t.BoolVal)
		case LiteralNull:
			return "Null"
		case LiteralInfinity:
			return "Infinity"
		case LiteralNaN:
			return "NaN"
		}
	case FStringSection:
		return fmt.Sprintf("FString%s(%q)", t.FStringPart, t.FStringText)
	case Keyword:
		return fmt.Sprintf("Keyword(%s)", keywordText[t.KeywordKind])
	case Punctuator:
		return fmt.Sprintf("Punct(%s)", t.PunctuatorKind.Text())
	}
	return "?"
}

// MakeIdent constructs an identifier token.
func MakeIdent(name string, pos sourcerange.SourceRange) Token {
	return Token{Kind: Ident, IdentName: name, Pos: pos}
}

// MakeKeyword constructs a keyword token.
func MakeKeyword(kw KeywordKind, pos sourcerange.SourceRange) Token {
	return Token{Kind: Keyword, KeywordKind: kw, Pos: pos}
}

// MakePunctuator constructs a punctuator token.
func MakePunctuator(p PunctuatorKind, pos sourcerange.SourceRange) Token {
	return Token{Kind: Punctuator, PunctuatorKind: p, Pos: pos}
}

// MakeIntLiteral constructs an Int literal token.
func MakeIntLiteral(v *big.Int, pos sourcerange.SourceRange) Token {
	return Token{Kind: Literal, LitKind: LiteralInt, IntVal: v, Pos: pos}
}

// MakeByteLiteral constructs a Byte literal token.
func MakeByteLiteral(v byte, pos sourcerange.SourceRange) Token {
	return Token{Kind: Literal, LitKind: LiteralByte, ByteVal: v, Pos: pos}
}

// MakeFloatLiteral constructs a Float literal token.
func MakeFloatLiteral(v float64, pos sourcerange.SourceRange) Token {
	return Token{Kind: Literal, LitKind: LiteralFloat, FloatVal: v, Pos: pos}
}

// MakeStringLiteral constructs a String literal token.
func MakeStringLiteral(v string, pos sourcerange.SourceRange) Token {
	return Token{Kind: Literal, LitKind: LiteralString, StringVal: v, Pos: pos}
}

// MakeBoolLiteral constructs a Bool literal token.
func MakeBoolLiteral(v bool, pos sourcerange.SourceRange) Token {
	return Token{Kind: Literal, LitKind: LiteralBool, BoolVal: v, Pos: pos}
}

// MakeKeywordLiteral constructs a Null/Infinity/NaN literal token.
func MakeKeywordLiteral(kind LiteralKind, pos sourcerange.SourceRange) Token {
	return Token{Kind: Literal, LitKind: kind, Pos: pos}
}

// MakeFStringSection constructs a formatted-string-literal section token.
func MakeFStringSection(part FStringPart, text string, pos sourcerange.SourceRange) Token {
	return Token{Kind: FStringSection, FStringPart: part, FStringText: text, Pos: pos}
}
