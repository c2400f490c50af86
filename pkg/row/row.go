package row

import (
	"bytes"
	"fmt"
	"io"
	"rowdb/pkg/types"
)

const (
	IDSize       = 1
	UsernameSize = types.FixedTextSize
	EmailSize    = types.FixedTextSize

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	// Size is the serialized length of every row.
	Size = IDSize + UsernameSize + EmailSize
)

// Row is one record of the table.
type Row struct {
	ID       uint8
	Username types.FixedText
	Email    types.FixedText
}

// New builds a Row, encoding username and email to their fixed width.
func New(id uint8, username, email string) Row {
	return Row{
		ID:       id,
		Username: types.NewFixedText(username),
		Email:    types.NewFixedText(email),
	}
}

// Serialize writes the row's Size-byte form to w.
func (r Row) Serialize(w io.Writer) error {
	var buf [Size]byte
	r.PutBytes(buf[:])
	_, err := w.Write(buf[:])
	return err
}

// PutBytes encodes the row into dst, which must hold at least Size bytes.
func (r Row) PutBytes(dst []byte) {
	dst[IDOffset] = r.ID
	r.Username.PutBytes(dst[UsernameOffset : UsernameOffset+UsernameSize])
	r.Email.PutBytes(dst[EmailOffset : EmailOffset+EmailSize])
}

// Deserialize reads one row from r.
func Deserialize(r io.Reader) (Row, error) {
	var buf [Size]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Row{}, err
	}
	return FromBytes(buf[:])
}

// FromBytes decodes a row from the first Size bytes of src.
func FromBytes(src []byte) (Row, error) {
	if len(src) < Size {
		return Row{}, fmt.Errorf("row needs %d bytes, got %d", Size, len(src))
	}

	username, err := types.FixedTextFromBytes(src[UsernameOffset : UsernameOffset+UsernameSize])
	if err != nil {
		return Row{}, fmt.Errorf("username: %w", err)
	}
	email, err := types.FixedTextFromBytes(src[EmailOffset : EmailOffset+EmailSize])
	if err != nil {
		return Row{}, fmt.Errorf("email: %w", err)
	}

	return Row{
		ID:       src[IDOffset],
		Username: username,
		Email:    email,
	}, nil
}

// Bytes returns the serialized form as a new slice.
func (r Row) Bytes() []byte {
	var buf bytes.Buffer
	_ = r.Serialize(&buf)
	return buf.Bytes()
}

// String renders the row with its padding visible. This is the debug form
// printed by select.
func (r Row) String() string {
	return fmt.Sprintf("Row{ID: %d, Username: %#v, Email: %#v}", r.ID, r.Username, r.Email)
}

// Equals reports whether both rows hold identical column buffers.
func (r Row) Equals(other Row) bool {
	return r == other
}
