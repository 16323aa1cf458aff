package bin

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/anaminus/parse"
)

// Writer mirrors Reader, writing big-endian primitives to a stream.
type Writer struct {
	fw *parse.BinaryWriter
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{fw: parse.NewBinaryWriter(w)}
}

// Err returns the first error that occurred, or nil.
func (w *Writer) Err() error {
	return w.fw.Err()
}

// Fail records err as the error of the writer, if no error has occurred yet.
func (w *Writer) Fail(err error) (failed bool) {
	return w.fw.Add(0, err)
}

// Bytes writes p.
func (w *Writer) Bytes(p []byte) (failed bool) {
	return w.fw.Bytes(p)
}

// Uint32 writes v as a big-endian uint32.
func (w *Writer) Uint32(v uint32) (failed bool) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return w.fw.Bytes(b[:])
}

// Int32 writes v as a big-endian int32.
func (w *Writer) Int32(v int32) (failed bool) {
	return w.Uint32(uint32(v))
}

// Float32 writes v as a big-endian IEEE 754 float.
func (w *Writer) Float32(v float32) (failed bool) {
	return w.Uint32(math.Float32bits(v))
}

// Bool32 writes v as a uint32 holding 0 or 1.
func (w *Writer) Bool32(v bool) (failed bool) {
	if v {
		return w.Uint32(1)
	}
	return w.Uint32(0)
}

// String writes a length-prefixed string.
func (w *Writer) String(v string) (failed bool) {
	if w.Uint32(uint32(len(v))) {
		return true
	}
	return w.fw.Bytes([]byte(v))
}

// Strings writes a length-prefixed list of length-prefixed strings.
func (w *Writer) Strings(v []string) (failed bool) {
	if w.Uint32(uint32(len(v))) {
		return true
	}
	for _, s := range v {
		if w.String(s) {
			return true
		}
	}
	return false
}

// End returns the number of bytes written and the error of the writer.
func (w *Writer) End() (n int64, err error) {
	return w.fw.End()
}

// Buffer is a Writer that accumulates its output in memory.
type Buffer struct {
	*Writer
	buf bytes.Buffer
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	b := &Buffer{}
	b.Writer = NewWriter(&b.buf)
	return b
}

// Result returns the written bytes, or the error of the writer.
func (b *Buffer) Result() ([]byte, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b.buf.Bytes(), nil
}
