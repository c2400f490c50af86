package types

import (
	"encoding/binary"
	"fmt"
	"io"
)

// TextCapacity is the number of code points held by every text column.
const TextCapacity = 32

// FixedTextSize is the serialized size of a FixedText in bytes.
// Each code point is stored as a little-endian uint32.
const FixedTextSize = TextCapacity * 4

// FixedText is a fixed-capacity text buffer. Values shorter than TextCapacity
// are padded with U+0000, longer values are truncated.
type FixedText [TextCapacity]rune

// EncodeFixed converts s into exactly capacity code points, left-aligned.
// The remainder is filled with zero code points. Input past capacity is
// dropped without error.
func EncodeFixed(s string, capacity int) []rune {
	if capacity <= 0 {
		return []rune{}
	}

	buf := make([]rune, capacity)
	i := 0
	for _, r := range s {
		if i == capacity {
			break
		}
		buf[i] = r
		i++
	}
	return buf
}

// NewFixedText encodes s into a FixedText.
func NewFixedText(s string) FixedText {
	var f FixedText
	copy(f[:], EncodeFixed(s, TextCapacity))
	return f
}

// String returns the stored value without its zero padding.
func (f FixedText) String() string {
	return string(f[:f.Len()])
}

// Raw returns all TextCapacity code points, padding included.
func (f FixedText) Raw() string {
	return string(f[:])
}

// Len returns the number of code points before the padding.
func (f FixedText) Len() int {
	n := TextCapacity
	for n > 0 && f[n-1] == 0 {
		n--
	}
	return n
}

// GoString renders the full buffer quoted, so the padding is visible in
// debug output.
func (f FixedText) GoString() string {
	return fmt.Sprintf("%+q", f.Raw())
}

// Serialize writes the buffer as TextCapacity little-endian uint32 values.
func (f FixedText) Serialize(w io.Writer) error {
	var buf [FixedTextSize]byte
	f.PutBytes(buf[:])
	_, err := w.Write(buf[:])
	return err
}

// PutBytes encodes the buffer into dst, which must hold FixedTextSize bytes.
func (f FixedText) PutBytes(dst []byte) {
	_ = dst[FixedTextSize-1]
	for i, r := range f {
		binary.LittleEndian.PutUint32(dst[i*4:], uint32(r))
	}
}

// FixedTextFromBytes decodes a buffer written by PutBytes.
func FixedTextFromBytes(src []byte) (FixedText, error) {
	var f FixedText
	if len(src) < FixedTextSize {
		return f, fmt.Errorf("fixed text needs %d bytes, got %d", FixedTextSize, len(src))
	}

	for i := range f {
		f[i] = rune(binary.LittleEndian.Uint32(src[i*4:]))
	}
	return f, nil
}

// ParseFixedText reads a FixedText from r.
func ParseFixedText(r io.Reader) (FixedText, error) {
	var buf [FixedTextSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return FixedText{}, err
	}
	return FixedTextFromBytes(buf[:])
}
