package row

import (
	"fmt"
	"regexp"
	"rowdb/pkg/parser/lexer"
	"strconv"
	"strings"
	"unicode/utf8"
)

// insertPattern is the insert grammar. Fields are separated by exactly one
// space. It is searched for anywhere in the line and does not need to
// consume all of it.
var insertPattern = regexp.MustCompile(
	`insert ([0-9]+) (` + lexer.WordClass + `+) (` +
		lexer.WordClass + `+@` + lexer.WordClass + `+\.` + lexer.WordClass + `+)`,
)

// ErrorKind classifies decode failures.
type ErrorKind int

const (
	// NoMatch means no part of the line fits the insert grammar.
	NoMatch ErrorKind = iota
	// IDOutOfRange means the id is all digits but does not fit in a uint8.
	IDOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case NoMatch:
		return "NO_MATCH"
	case IDOutOfRange:
		return "ID_OUT_OF_RANGE"
	default:
		return "UNKNOWN"
	}
}

// DecodeError describes why an insert line could not become a Row.
// Column is 1-based and counts code points of the trimmed line; it is zero
// when no position could be attributed.
type DecodeError struct {
	Kind     ErrorKind
	Input    string
	Column   int
	Expected string
	Found    string
	Err      error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case IDOutOfRange:
		return fmt.Sprintf("id %s at column %d does not fit in 0..%d", e.Found, e.Column, maxID)
	default:
		if e.Expected == "" {
			return "no match"
		}
		return fmt.Sprintf("no match: expected %s at column %d, found %s", e.Expected, e.Column, e.Found)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

const maxID = 255

// Decode extracts a Row from an insert line of the form
//
//	insert <id> <username> <email>
//
// with exactly one space between fields, where id is decimal digits fitting
// 0..255, username is a run of word
// characters and email is word@word.word. The first matching substring is
// used. Username and email are truncated or padded to their fixed width.
func Decode(line string) (Row, error) {
	line = strings.TrimSpace(line)

	loc := insertPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return Row{}, diagnose(line)
	}

	idText := line[loc[2]:loc[3]]
	id, err := strconv.ParseUint(idText, 10, 8)
	if err != nil {
		return Row{}, &DecodeError{
			Kind:   IDOutOfRange,
			Input:  line,
			Column: utf8.RuneCountInString(line[:loc[2]]) + 1,
			Found:  idText,
			Err:    err,
		}
	}

	return New(uint8(id), line[loc[4]:loc[5]], line[loc[6]:loc[7]]), nil
}

// expectation is one step of the insert grammar as seen by the lexer.
type expectation struct {
	what string
	ok   func(lexer.TokenType) bool
	// glued steps must start right where the previous token ended.
	glued bool
}

var insertSteps = []expectation{
	{what: "insert", ok: is(lexer.INSERT)},
	{what: "id (digits)", ok: is(lexer.NUMBER)},
	{what: "username", ok: lexer.TokenType.IsWordLike},
	{what: "email", ok: lexer.TokenType.IsWordLike},
	{what: "'@' in email", ok: is(lexer.AT), glued: true},
	{what: "email domain", ok: lexer.TokenType.IsWordLike, glued: true},
	{what: "'.' in email", ok: is(lexer.DOT), glued: true},
	{what: "email top-level domain", ok: lexer.TokenType.IsWordLike, glued: true},
}

func is(want lexer.TokenType) func(lexer.TokenType) bool {
	return func(got lexer.TokenType) bool { return got == want }
}

// diagnose walks the line with the lexer to name the first token that breaks
// the grammar. If the walk finds nothing wrong the error is a bare no match.
func diagnose(line string) *DecodeError {
	runes := []rune(line)
	l := lexer.NewLexer(line)
	prevEnd := 0

	for i, step := range insertSteps {
		tok := l.NextToken()

		if tok.Type == lexer.EOF {
			return noMatchAt(line, step.what, tok.Position, "end of input")
		}
		if i > 0 && !step.glued && tok.Position > prevEnd {
			if pos, ok := badSeparator(runes, prevEnd, tok.Position); !ok {
				return noMatchAt(line, "single space before "+step.what, pos, strconv.Quote(string(runes[pos])))
			}
		}
		if !step.ok(tok.Type) {
			return noMatchAt(line, step.what, tok.Position, strconv.Quote(tok.Value))
		}
		if i > 0 && step.glued && tok.Position != prevEnd {
			return noMatchAt(line, step.what, prevEnd, "whitespace")
		}
		prevEnd = tok.Position + utf8.RuneCountInString(tok.Value)
	}

	return &DecodeError{Kind: NoMatch, Input: line}
}

// badSeparator checks the gap runes[from:to] between two fields. It returns
// the position of the first rune that is not the single separator.
func badSeparator(runes []rune, from, to int) (int, bool) {
	if runes[from] != lexer.Separator {
		return from, false
	}
	if to-from > 1 {
		return from + 1, false
	}
	return 0, true
}

func noMatchAt(line, expected string, pos int, found string) *DecodeError {
	return &DecodeError{
		Kind:     NoMatch,
		Input:    line,
		Column:   pos + 1,
		Expected: expected,
		Found:    found,
	}
}
