package row

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_SizeIsFixed(t *testing.T) {
	assert.Equal(t, 257, Size)

	short := New(1, "a", "a@b.c")
	long := New(255, strings.Repeat("x", 100), strings.Repeat("y", 100))
	assert.Len(t, short.Bytes(), Size)
	assert.Len(t, long.Bytes(), Size)
}

func TestRow_SerializeRoundTrip(t *testing.T) {
	r := New(42, "cstack", "foo@bar.com")

	var buf bytes.Buffer
	require.NoError(t, r.Serialize(&buf))

	back, err := Deserialize(&buf)
	require.NoError(t, err)
	assert.True(t, r.Equals(back))
}

func TestRow_Layout(t *testing.T) {
	b := New(7, "ab", "c@d.e").Bytes()

	assert.Equal(t, byte(7), b[IDOffset])
	assert.Equal(t, []byte{'a', 0, 0, 0, 'b', 0, 0, 0}, b[UsernameOffset:UsernameOffset+8])
	assert.Equal(t, byte('c'), b[EmailOffset])
}

func TestFromBytes_ShortBuffer(t *testing.T) {
	_, err := FromBytes(make([]byte, Size-1))
	assert.Error(t, err)
}

func TestDeserialize_ShortReader(t *testing.T) {
	_, err := Deserialize(bytes.NewReader(make([]byte, 10)))
	assert.Error(t, err)
}

func TestRow_StringShowsPadding(t *testing.T) {
	s := New(1, "cstack", "foo@bar.com").String()

	assert.True(t, strings.HasPrefix(s, `Row{ID: 1, Username: "cstack\x00`))
	assert.Contains(t, s, `Email: "foo@bar.com\x00`)
	assert.Equal(t, 26+21, strings.Count(s, `\x00`))
}
