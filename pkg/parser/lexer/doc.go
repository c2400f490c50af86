// Package lexer implements the tokenizer for rowdb's statement lines.
//
// The lexer converts a raw input line into a stream of typed tokens. Matching
// is case-sensitive: "insert" is a keyword, "INSERT" is a plain word.
//
// # Usage
//
//	l := lexer.NewLexer("insert 1 cstack foo@bar.com")
//	for {
//	    tok := l.NextToken()
//	    if tok.Type == lexer.EOF {
//	        break
//	    }
//	    fmt.Printf("type=%s value=%q col=%d\n", tok.Type, tok.Value, tok.Position)
//	}
//
// # Token types
//
// Keywords (INSERT, SELECT), NUMBER for runs of ASCII digits, WORD for any
// other run of word characters (see IsWordChar), the AT and DOT separators
// used by e-mail addresses, INVALID for anything else, and the sentinel EOF.
// Only ASCII whitespace separates tokens; other spaces lex as INVALID.
//
// Positions are code point offsets into the trimmed input, so they line up
// with what the user typed even when the line holds multi-byte characters.
package lexer
