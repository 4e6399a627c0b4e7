package wire

import (
	"encoding/binary"
	"math"
)

// Writer builds a world blob. All multi-byte writes are little-endian and
// append to an internal buffer; writes never fail. A Writer that mirrors a
// Reader's field order reproduces the original bytes exactly.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 256)}
}

// PutU8 writes 1 byte.
func (w *Writer) PutU8(v uint8) {
	w.buf = append(w.buf, v)
}

// PutU16 writes 2 bytes little-endian.
func (w *Writer) PutU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PutU32 writes 4 bytes little-endian.
func (w *Writer) PutU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PutI32 writes 4 bytes little-endian.
func (w *Writer) PutI32(v int32) {
	w.PutU32(uint32(v))
}

// PutF32 writes a little-endian IEEE 754 float.
func (w *Writer) PutF32(v float32) {
	w.PutU32(math.Float32bits(v))
}

// PutBytes writes raw bytes.
func (w *Writer) PutBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// PutStr16 writes a uint16 length prefix followed by the raw string bytes.
func (w *Writer) PutStr16(s string) {
	w.PutU16(uint16(len(s)))
	w.buf = append(w.buf, s...)
}

// PutStr32 writes a uint32 length prefix followed by the raw string bytes.
func (w *Writer) PutStr32(s string) {
	w.PutU32(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}
