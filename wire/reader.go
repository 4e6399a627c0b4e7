package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var (
	// ErrTruncated is returned when a read needs more bytes than remain in
	// the buffer. The cursor position is left unchanged.
	ErrTruncated = errors.New("wire: truncated buffer")

	// ErrInvalidEncoding is returned when a length-prefixed string's payload
	// is not valid UTF-8.
	ErrInvalidEncoding = errors.New("wire: invalid string encoding")
)

// Reader is a forward-only cursor over a world blob. All multi-byte reads are
// little-endian. Every read either consumes exactly its width or fails with
// ErrTruncated without advancing.
type Reader struct {
	data []byte
	off  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current byte offset.
func (r *Reader) Pos() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

func (r *Reader) need(n int) error {
	if r.off+n > len(r.data) {
		return fmt.Errorf("%w: need %d bytes at offset %d, %d remain",
			ErrTruncated, n, r.off, len(r.data)-r.off)
	}
	return nil
}

// U8 reads 1 unsigned byte.
func (r *Reader) U8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.off]
	r.off++
	return v, nil
}

// U16 reads 2 bytes as little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v, nil
}

// U32 reads 4 bytes as little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

// I32 reads 4 bytes as little-endian int32.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// F32 reads 4 bytes as a little-endian IEEE 754 float.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	return math.Float32frombits(v), err
}

// Bytes reads n raw bytes into a fresh slice.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	copy(b, r.data[r.off:r.off+n])
	r.off += n
	return b, nil
}

// Str16 reads a uint16 length prefix followed by that many bytes of UTF-8.
// No terminator is consumed.
func (r *Reader) Str16() (string, error) {
	n, err := r.U16()
	if err != nil {
		return "", err
	}
	return r.str(int(n))
}

// Str32 reads a uint32 length prefix followed by that many bytes of UTF-8.
func (r *Reader) Str32() (string, error) {
	n, err := r.U32()
	if err != nil {
		return "", err
	}
	return r.str(int(n))
}

func (r *Reader) str(n int) (string, error) {
	start := r.off
	raw, err := r.Bytes(n)
	if err != nil {
		return "", err
	}
	if _, _, err := transform.Bytes(encoding.UTF8Validator, raw); err != nil {
		return "", fmt.Errorf("%w: %d-byte string at offset %d", ErrInvalidEncoding, n, start)
	}
	return string(raw), nil
}
