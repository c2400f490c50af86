package lexer

import "strings"

// keywords maps statement keyword text to token types. Lookup is exact.
var keywords = map[string]TokenType{
	"insert": INSERT,
	"select": SELECT,
}

var singleCharTokens = map[rune]TokenType{
	'@': AT,
	'.': DOT,
}

// Lexer performs lexical analysis on a single input line.
type Lexer struct {
	input  []rune
	pos    int
	length int
}

// NewLexer creates a new Lexer for the given line. Surrounding whitespace is
// trimmed; case is preserved.
func NewLexer(input string) *Lexer {
	processed := []rune(strings.TrimSpace(input))
	return &Lexer{
		input:  processed,
		pos:    0,
		length: len(processed),
	}
}

// NextToken scans and returns the next token from the input.
// It skips leading whitespace and returns an EOF token when the input is exhausted.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= l.length {
		return Token{Type: EOF, Value: "", Position: l.pos}
	}

	start := l.pos
	ch := l.input[l.pos]

	if tt, ok := singleCharTokens[ch]; ok {
		l.pos++
		return l.createToken(tt, string(ch), start)
	}

	if IsWordChar(ch) {
		return l.readWord(start)
	}

	l.pos++
	return l.createToken(INVALID, string(ch), start)
}

// Tokens drains the lexer, EOF excluded.
func (l *Lexer) Tokens() []Token {
	var out []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			return out
		}
		out = append(out, tok)
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < l.length && IsSpace(l.input[l.pos]) {
		l.pos++
	}
}

// readWord reads a maximal run of word characters and classifies it as a
// keyword, a NUMBER when every character is an ASCII digit, or a WORD.
func (l *Lexer) readWord(start int) Token {
	allDigits := true
	for l.pos < l.length && IsWordChar(l.input[l.pos]) {
		if !isASCIIDigit(l.input[l.pos]) {
			allDigits = false
		}
		l.pos++
	}

	value := string(l.input[start:l.pos])
	if tt, ok := keywords[value]; ok {
		return l.createToken(tt, value, start)
	}
	if allDigits {
		return l.createToken(NUMBER, value, start)
	}
	return l.createToken(WORD, value, start)
}

func (l *Lexer) createToken(t TokenType, value string, start int) Token {
	return Token{
		Type:     t,
		Value:    value,
		Position: start,
	}
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
