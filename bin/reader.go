// Package bin implements the byte cursor shared by the cooked (binary) codecs.
//
// A Reader walks an immutable buffer, reading big-endian primitives and
// length-prefixed strings and lists. Like the parse.BinaryReader it is built
// on, every read reports whether it failed; the first error is retained and
// every read after it fails immediately. The position of a Reader is local
// to it, so a Reader must not be shared between goroutines.
package bin

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/anaminus/parse"

	"github.com/Kriskras99/ferris-dancing-sub001/errors"
)

// ErrLength indicates a length prefix that exceeds the remaining data.
var ErrLength = errors.New("length prefix exceeds remaining data")

// Reader is a position-tracked cursor over a byte buffer.
type Reader struct {
	buf  []byte
	base int64
	src  *bytes.Reader
	fr   *parse.BinaryReader
}

// NewReader returns a Reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return newReader(b, 0)
}

func newReader(b []byte, base int64) *Reader {
	src := bytes.NewReader(b[base:])
	return &Reader{
		buf:  b,
		base: base,
		src:  src,
		fr:   parse.NewBinaryReader(src),
	}
}

// At returns a new Reader over the same buffer, positioned at the absolute
// offset off. The receiver is not affected.
func (r *Reader) At(off int64) (*Reader, error) {
	if off < 0 || off > int64(len(r.buf)) {
		return nil, errors.DataError{Offset: off, Cause: io.ErrUnexpectedEOF}
	}
	return newReader(r.buf, off), nil
}

// N returns the absolute offset of the cursor within the buffer.
func (r *Reader) N() int64 {
	return r.base + r.fr.N()
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return r.src.Len()
}

// Err returns the first error that occurred, or nil.
func (r *Reader) Err() error {
	return r.fr.Err()
}

// Fail records err as the error of the reader, if no error has occurred yet.
// Returns true if the reader is in a failed state afterwards.
func (r *Reader) Fail(err error) (failed bool) {
	return r.fr.Add(0, err)
}

// Error returns the error of the reader wrapped with the current offset, or
// nil if no error occurred.
func (r *Reader) Error() error {
	err := r.fr.Err()
	if err == nil {
		return nil
	}
	if _, ok := err.(errors.DataError); ok {
		return err
	}
	return errors.DataError{Offset: r.N(), Cause: err}
}

// Bytes fills p with the next len(p) bytes.
func (r *Reader) Bytes(p []byte) (failed bool) {
	return r.fr.Bytes(p)
}

// Peek32 returns the next big-endian uint32 without advancing the cursor.
func (r *Reader) Peek32() (v uint32, failed bool) {
	if r.fr.Err() != nil {
		return 0, true
	}
	var b [4]byte
	pos := r.src.Size() - int64(r.src.Len())
	if _, err := r.src.ReadAt(b[:], pos); err != nil {
		r.fr.Add(0, io.ErrUnexpectedEOF)
		return 0, true
	}
	return binary.BigEndian.Uint32(b[:]), false
}

// Uint32 reads a big-endian uint32.
func (r *Reader) Uint32(v *uint32) (failed bool) {
	var b [4]byte
	if r.fr.Bytes(b[:]) {
		return true
	}
	*v = binary.BigEndian.Uint32(b[:])
	return false
}

// Int32 reads a big-endian int32.
func (r *Reader) Int32(v *int32) (failed bool) {
	var u uint32
	if r.Uint32(&u) {
		return true
	}
	*v = int32(u)
	return false
}

// Float32 reads a big-endian IEEE 754 float.
func (r *Reader) Float32(v *float32) (failed bool) {
	var u uint32
	if r.Uint32(&u) {
		return true
	}
	*v = math.Float32frombits(u)
	return false
}

// Bool32 reads a boolean stored as a uint32. Values other than 0 and 1 are
// a structural mismatch.
func (r *Reader) Bool32(v *bool) (failed bool) {
	off := r.N()
	var u uint32
	if r.Uint32(&u) {
		return true
	}
	switch u {
	case 0:
		*v = false
	case 1:
		*v = true
	default:
		return r.Fail(errors.StructuralMismatch{Offset: off, Field: "bool", Want: 1, Got: u})
	}
	return false
}

// Expect32 reads a uint32 and verifies that it equals want. The field name is
// used to report a mismatch.
func (r *Reader) Expect32(field string, want uint32) (failed bool) {
	off := r.N()
	var got uint32
	if r.Uint32(&got) {
		return true
	}
	if got != want {
		return r.Fail(errors.StructuralMismatch{Offset: off, Field: field, Want: want, Got: got})
	}
	return false
}

// Count reads the length prefix of a list whose elements occupy at least
// size bytes each.
func (r *Reader) Count(n *int, size int) (failed bool) {
	var length uint32
	if r.Uint32(&length) {
		return true
	}
	if size < 1 {
		size = 1
	}
	if uint64(length)*uint64(size) > uint64(r.src.Len()) {
		return r.Fail(ErrLength)
	}
	*n = int(length)
	return false
}

// String reads a length-prefixed string.
func (r *Reader) String(v *string) (failed bool) {
	var length int
	if r.Count(&length, 1) {
		return true
	}
	s := make([]byte, length)
	if r.fr.Bytes(s) {
		return true
	}
	*v = string(s)
	return false
}

// Strings reads a length-prefixed list of length-prefixed strings. An empty
// list is read as nil.
func (r *Reader) Strings(v *[]string) (failed bool) {
	var length int
	if r.Count(&length, 4) {
		return true
	}
	if length == 0 {
		*v = nil
		return false
	}
	list := make([]string, length)
	for i := range list {
		if r.String(&list[i]) {
			return true
		}
	}
	*v = list
	return false
}

// End returns the number of bytes read and the error of the reader.
func (r *Reader) End() (n int64, err error) {
	return r.fr.End()
}
