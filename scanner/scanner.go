// Package scanner splits annotated C++ declaration lines into tokens for
// the declaration parser. It only knows the handful of token kinds the
// declaration grammar needs; every other byte becomes an Other token so
// the parser can reject it with a precise column.
//
// Comments (// to end of line and /* ... */) are skipped like whitespace.
package scanner

import "fmt"

// Kind classifies a token.
type Kind int

const (
	EOF    Kind = iota
	Ident       // identifier or keyword
	Star        // *
	LBrack      // [
	RBrack      // ]
	LParen      // (
	RParen      // )
	Comma       // ,
	Semi        // ;
	Less        // <
	Greater     // >
	Other       // any other single byte
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of line"
	case Ident:
		return "identifier"
	case Star:
		return "'*'"
	case LBrack:
		return "'['"
	case RBrack:
		return "']'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Comma:
		return "','"
	case Semi:
		return "';'"
	case Less:
		return "'<'"
	case Greater:
		return "'>'"
	default:
		return "character"
	}
}

// Token is one lexical unit. Offset is the byte offset of the token in
// the scanned source.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return t.Kind.String()
	case Ident:
		return fmt.Sprintf("identifier %q", t.Text)
	default:
		return fmt.Sprintf("%q", t.Text)
	}
}

// Scanner iterates over the tokens of a source string.
type Scanner struct {
	src string
	pos int
}

// New creates a Scanner for src. Call Next to read the first token.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next token, or an EOF token at end of input. EOF is
// returned again on every call after the end is reached.
func (s *Scanner) Next() Token {
	s.skipSpace()
	if s.pos >= len(s.src) {
		return Token{Kind: EOF, Offset: len(s.src)}
	}

	start := s.pos
	ch := s.src[s.pos]
	if isIdentStart(ch) {
		for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
			s.pos++
		}
		return Token{Kind: Ident, Text: s.src[start:s.pos], Offset: start}
	}

	s.pos++
	kind := Other
	switch ch {
	case '*':
		kind = Star
	case '[':
		kind = LBrack
	case ']':
		kind = RBrack
	case '(':
		kind = LParen
	case ')':
		kind = RParen
	case ',':
		kind = Comma
	case ';':
		kind = Semi
	case '<':
		kind = Less
	case '>':
		kind = Greater
	}
	return Token{Kind: kind, Text: s.src[start:s.pos], Offset: start}
}

// skipSpace advances past whitespace and comments.
func (s *Scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch {
		case isSpace(s.src[s.pos]):
			s.pos++
		case s.lookingAt("//"):
			s.pos = len(s.src)
		case s.lookingAt("/*"):
			end := indexFrom(s.src, "*/", s.pos+2)
			if end < 0 {
				s.pos = len(s.src)
			} else {
				s.pos = end + 2
			}
		default:
			return
		}
	}
}

func (s *Scanner) lookingAt(prefix string) bool {
	return len(s.src)-s.pos >= len(prefix) && s.src[s.pos:s.pos+len(prefix)] == prefix
}

// Tokenize returns all tokens of src, ending with a single EOF token.
func Tokenize(src string) []Token {
	s := New(src)
	var toks []Token
	for {
		tok := s.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

// isIdentStart reports whether ch can begin an identifier.
func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isIdentPart reports whether ch can continue an identifier.
func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

// isIdent reports whether s is a non-empty identifier.
func isIdent(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return true
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f'
}

func indexFrom(s, sub string, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
