package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

// wordTables is the word class: alphabetic code points (letters, letter
// numbers, Other_Alphabetic), marks, decimal digits, connector punctuation
// and the join controls.
var wordTables = []*unicode.RangeTable{
	unicode.L,
	unicode.Nl,
	unicode.Other_Alphabetic,
	unicode.M,
	unicode.Nd,
	unicode.Pc,
	unicode.Join_Control,
}

// WordClass is a regexp character class accepting exactly the runes for
// which IsWordChar is true.
var WordClass = buildWordClass()

func buildWordClass() string {
	var b strings.Builder
	b.WriteString(`[\p{L}\p{Nl}\p{M}\p{Nd}\p{Pc}`)
	for _, t := range []*unicode.RangeTable{unicode.Other_Alphabetic, unicode.Join_Control} {
		writeRanges(&b, t)
	}
	b.WriteString(`]`)
	return b.String()
}

func writeRanges(b *strings.Builder, t *unicode.RangeTable) {
	add := func(lo, hi, stride rune) {
		if stride == 1 {
			fmt.Fprintf(b, `\x{%X}-\x{%X}`, lo, hi)
			return
		}
		for r := lo; r <= hi; r += stride {
			fmt.Fprintf(b, `\x{%X}`, r)
		}
	}
	for _, r := range t.R16 {
		add(rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range t.R32 {
		add(rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
}

// IsWordChar reports whether r belongs to the word class.
func IsWordChar(r rune) bool {
	return unicode.IsOneOf(wordTables, r)
}

// Separator is the only character allowed between statement fields.
const Separator = ' '

// IsSpace reports whether r is skipped between tokens. The set is the one
// regexp's \s uses; other Unicode spaces lex as INVALID.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
