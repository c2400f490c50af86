package row

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_BasicInsert(t *testing.T) {
	r, err := Decode("insert 1 cstack foo@bar.com")
	require.NoError(t, err)

	assert.Equal(t, uint8(1), r.ID)
	assert.Equal(t, "cstack"+strings.Repeat("\x00", 26), r.Username.Raw())
	assert.Equal(t, "foo@bar.com"+strings.Repeat("\x00", 21), r.Email.Raw())
}

func TestDecode_IDRange(t *testing.T) {
	for _, id := range []int{0, 1, 128, 255} {
		line := "insert " + strconv.Itoa(id) + " user mail@example.org"

		r, err := Decode(line)
		require.NoError(t, err, line)
		assert.Equal(t, uint8(id), r.ID)
	}
}

func TestDecode_LeadingZerosAccepted(t *testing.T) {
	r, err := Decode("insert 007 bond james@mi6.uk")
	require.NoError(t, err)
	assert.Equal(t, uint8(7), r.ID)
}

func TestDecode_IDOverflowIsRecoverable(t *testing.T) {
	_, err := Decode("insert 256 user mail@example.org")
	require.Error(t, err)

	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, IDOutOfRange, decErr.Kind)
	assert.Equal(t, "256", decErr.Found)
	assert.Equal(t, 8, decErr.Column)
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.Equal(t, "id 256 at column 8 does not fit in 0..255", err.Error())
}

func TestDecode_NonNumericIDIsNoMatch(t *testing.T) {
	_, err := Decode("insert abc x y")
	require.Error(t, err)

	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, NoMatch, decErr.Kind)
	assert.Equal(t, 8, decErr.Column)
	assert.True(t, strings.HasPrefix(err.Error(), "no match"))
	assert.Equal(t, `no match: expected id (digits) at column 8, found "abc"`, err.Error())
}

func TestDecode_NoMatchDiagnostics(t *testing.T) {
	tests := []struct {
		line     string
		expected string
		column   int
		found    string
	}{
		{"insert", "id (digits)", 7, "end of input"},
		{"insert 1", "username", 9, "end of input"},
		{"insert 1 bob", "email", 13, "end of input"},
		{"insert 1 bob bob", "'@' in email", 17, "end of input"},
		{"insert 1 bob bob@", "email domain", 18, "end of input"},
		{"insert 1 bob bob@example", "'.' in email", 25, "end of input"},
		{"insert 1 bob bob@example.", "email top-level domain", 26, "end of input"},
		{"insert 1 bob bob @example.com", "'@' in email", 17, "whitespace"},
		{"insert 1 b-ob bob@example.com", "email", 11, `"-"`},
		{"insert -1 bob bob@example.com", "id (digits)", 8, `"-"`},
		{"insert  1 bob bob@x.io", "single space before id (digits)", 8, `" "`},
		{"insert\t1\tbob\tbob@x.io", "single space before id (digits)", 7, `"\t"`},
		{"insert 1 bob\tbob@x.io", "single space before email", 13, `"\t"`},
		{"insert 1 bob   bob@x.io", "single space before email", 14, `" "`},
		{"insert\u00a01 bob bob@x.io", "id (digits)", 7, `"\u00a0"`},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Decode(tt.line)

			var decErr *DecodeError
			require.True(t, errors.As(err, &decErr))
			assert.Equal(t, NoMatch, decErr.Kind)
			assert.Equal(t, tt.expected, decErr.Expected)
			assert.Equal(t, tt.column, decErr.Column)
			assert.Equal(t, tt.found, decErr.Found)
		})
	}
}

func TestDecode_MatchesFirstOccurrenceAnywhere(t *testing.T) {
	r, err := Decode("insert 3 alice alice@example.com and trailing words")
	require.NoError(t, err)
	assert.Equal(t, uint8(3), r.ID)
	assert.Equal(t, "alice", r.Username.String())
	assert.Equal(t, "alice@example.com", r.Email.String())

	r, err = Decode("insertion insert 4 bob bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint8(4), r.ID)
}

func TestDecode_EmailStopsAtFirstDomainPart(t *testing.T) {
	r, err := Decode("insert 5 carol carol@mail.example.com")
	require.NoError(t, err)
	assert.Equal(t, "carol@mail.example", r.Email.String())
}

func TestDecode_TruncatesLongFields(t *testing.T) {
	long := strings.Repeat("u", 40)

	r, err := Decode("insert 9 " + long + " x@y.z")
	require.NoError(t, err)
	assert.Equal(t, long[:32], r.Username.Raw())
}

func TestDecode_UnicodeWords(t *testing.T) {
	r, err := Decode("insert 10 jürgen jürgen@bücher.de")
	require.NoError(t, err)
	assert.Equal(t, "jürgen", r.Username.String())
	assert.Equal(t, "jürgen@bücher.de", r.Email.String())
}

func TestDecode_ExtraWhitespaceBetweenFieldsRejected(t *testing.T) {
	for _, line := range []string{
		"insert  1 bob bob@x.io",
		"insert\t1\tbob\tbob@x.io",
		"insert 1  bob bob@x.io",
	} {
		_, err := Decode(line)
		require.Error(t, err, line)
		assert.True(t, strings.HasPrefix(err.Error(), "no match: expected single space"), err.Error())
	}
}

func TestDecode_AlphabeticSymbols(t *testing.T) {
	r, err := Decode("insert 1 Ⓐ a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "Ⓐ", r.Username.String())

	r, err = Decode("insert 2 Ⅻ x@y.z")
	require.NoError(t, err)
	assert.Equal(t, "Ⅻ", r.Username.String())
}

func TestDecode_SurroundingWhitespace(t *testing.T) {
	r, err := Decode("   insert 2 bob bob@example.com \t")
	require.NoError(t, err)
	assert.Equal(t, uint8(2), r.ID)
}
