// Package command classifies an input line as a meta-command or a statement
// without executing it.
package command

import "strings"

// MetaPrefix marks a line as a meta-command candidate.
const MetaPrefix = "."

// Category is the top-level outcome of classifying a line.
type Category int

const (
	// CategoryMeta is a recognized meta-command; see Classification.Meta.
	CategoryMeta Category = iota
	// CategoryStatement is a recognized statement; see Classification.Statement.
	CategoryStatement
	// CategoryUnrecognizedMeta is a dot-prefixed line that names no meta-command.
	CategoryUnrecognizedMeta
	// CategoryUnrecognized is any other line.
	CategoryUnrecognized
)

func (c Category) String() string {
	switch c {
	case CategoryMeta:
		return "META"
	case CategoryStatement:
		return "STATEMENT"
	case CategoryUnrecognizedMeta:
		return "UNRECOGNIZED_META"
	case CategoryUnrecognized:
		return "UNRECOGNIZED"
	default:
		return "UNKNOWN"
	}
}

type MetaCommand int

const (
	MetaExit MetaCommand = iota
)

func (m MetaCommand) String() string {
	switch m {
	case MetaExit:
		return ".exit"
	default:
		return "UNKNOWN"
	}
}

type StatementType int

const (
	Insert StatementType = iota
	Select
)

func (st StatementType) String() string {
	switch st {
	case Insert:
		return "INSERT"
	case Select:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}

// Keyword returns the text a line must start with to be this statement.
func (st StatementType) Keyword() string {
	switch st {
	case Insert:
		return "insert"
	case Select:
		return "select"
	default:
		return ""
	}
}

// metaCommands is the closed set of meta-command spellings.
var metaCommands = map[string]MetaCommand{
	".exit": MetaExit,
}

// statementOrder is the order keywords are tried in. The first prefix match wins.
var statementOrder = []StatementType{Insert, Select}

// Classification is the result of Classify. Meta is set only for
// CategoryMeta and Statement only for CategoryStatement. Input always holds
// the line as given.
type Classification struct {
	Category  Category
	Meta      MetaCommand
	Statement StatementType
	Input     string
}

// IsMeta reports whether the line was a recognized meta-command.
func (c Classification) IsMeta() bool {
	return c.Category == CategoryMeta
}

// IsStatement reports whether the line was a recognized statement.
func (c Classification) IsStatement() bool {
	return c.Category == CategoryStatement
}

// Classify decides the category of a trimmed line. It has no side effects.
//
// Dot-prefixed lines must equal a meta-command exactly (case-sensitive).
// Other lines only need to start with a statement keyword; what follows the
// keyword is not checked here.
func Classify(line string) Classification {
	if strings.HasPrefix(line, MetaPrefix) {
		if meta, ok := metaCommands[line]; ok {
			return Classification{Category: CategoryMeta, Meta: meta, Input: line}
		}
		return Classification{Category: CategoryUnrecognizedMeta, Input: line}
	}

	for _, st := range statementOrder {
		if strings.HasPrefix(line, st.Keyword()) {
			return Classification{Category: CategoryStatement, Statement: st, Input: line}
		}
	}

	return Classification{Category: CategoryUnrecognized, Input: line}
}
