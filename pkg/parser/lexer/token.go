package lexer

type TokenType int

const (
	INSERT TokenType = iota
	SELECT

	NUMBER
	WORD
	AT
	DOT

	INVALID
	EOF
)

func (t TokenType) String() string {
	switch t {
	case INSERT:
		return "INSERT"
	case SELECT:
		return "SELECT"
	case NUMBER:
		return "NUMBER"
	case WORD:
		return "WORD"
	case AT:
		return "AT"
	case DOT:
		return "DOT"
	case INVALID:
		return "INVALID"
	case EOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// IsWordLike reports whether the token can stand where the grammar expects
// a run of word characters. Digit-only runs qualify.
func (t TokenType) IsWordLike() bool {
	return t == WORD || t == NUMBER
}

type Token struct {
	Type     TokenType
	Value    string
	Position int
}
