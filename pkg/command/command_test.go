package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Exit(t *testing.T) {
	c := Classify(".exit")

	assert.True(t, c.IsMeta())
	assert.Equal(t, MetaExit, c.Meta)
	assert.Equal(t, ".exit", c.Input)
}

func TestClassify_UnrecognizedMeta(t *testing.T) {
	for _, line := range []string{".", ".EXIT", ".exit now", ".exi", ".help", "..exit", ".exit."} {
		c := Classify(line)

		assert.Equal(t, CategoryUnrecognizedMeta, c.Category, line)
		assert.Equal(t, line, c.Input)
	}
}

func TestClassify_Statements(t *testing.T) {
	tests := []struct {
		line string
		want StatementType
	}{
		{"insert 1 a b@c.d", Insert},
		{"insert", Insert},
		{"insertxyz", Insert},
		{"select", Select},
		{"select * from anything", Select},
		{"selected", Select},
	}

	for _, tt := range tests {
		c := Classify(tt.line)

		assert.True(t, c.IsStatement(), tt.line)
		assert.Equal(t, tt.want, c.Statement, tt.line)
		assert.Equal(t, tt.line, c.Input)
	}
}

func TestClassify_Unrecognized(t *testing.T) {
	for _, line := range []string{"banana", "INSERT 1 a b@c.d", "Select", " select", "", "exit"} {
		c := Classify(line)

		assert.Equal(t, CategoryUnrecognized, c.Category, line)
		assert.Equal(t, line, c.Input)
	}
}

func TestStatementType_Keyword(t *testing.T) {
	assert.Equal(t, "insert", Insert.Keyword())
	assert.Equal(t, "select", Select.Keyword())
	assert.Equal(t, "INSERT", Insert.String())
	assert.Equal(t, ".exit", MetaExit.String())
}
