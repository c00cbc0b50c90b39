// package bitbuf provides cross-byte shift-register primitives and the
// bit stream cursors built on top of them.
//
// A Buffer is one continuous shift register spanning its bytes in
// big-endian order. ShiftIn appends a bit at the least significant end,
// ShiftOut removes it again; the two are exact inverses.
//
// Writer and Reader pack and consume bit streams in the canonical
// layout shared by the prefix builder and the decoder: streams are
// most-significant-bit-first, full bytes are filled from bit 7 down,
// and a trailing partial byte keeps its bits right-aligned so that
// (1<<(nbits%8))-1 masks exactly the significant bits of the last byte.
package bitbuf

import "errors"

// ErrUnderflow is returned when a source buffer is shorter than the
// requested bit count requires.
var ErrUnderflow = errors.New("bitbuf: buffer underflow")

// Buffer is a multi-byte shift register.
type Buffer []byte

// ShiftIn shifts the whole register left one bit, injects bit (coerced
// to 0/1) at the last byte's least significant position and returns the
// bit that fell off the first byte.
func (b Buffer) ShiftIn(bit byte) byte {
	carry := bit & 1
	for i := len(b) - 1; i >= 0; i-- {
		next := b[i] >> 7
		b[i] = b[i]<<1 | carry
		carry = next
	}
	return carry
}

// ShiftOut is the mirror image of ShiftIn: it shifts the register right
// one bit, injects bit at the first byte's most significant position
// and returns the bit that fell off the last byte.
func (b Buffer) ShiftOut(bit byte) byte {
	carry := bit & 1
	for i := 0; i < len(b); i++ {
		next := b[i] & 1
		b[i] = carry<<7 | b[i]>>1
		carry = next
	}
	return carry
}

// Size returns the number of bytes needed to hold bits.
func Size(bits int) int {
	n := bits >> 3
	if bits&7 != 0 {
		n++
	}
	return n
}

// Writer appends bits to a buffer it owns.
type Writer struct {
	buf Buffer
	n   int
}

// NewWriter returns a Writer backed by a zeroed buffer of Size(bits)
// bytes.
func NewWriter(bits int) *Writer {
	return &Writer{buf: make(Buffer, Size(bits))}
}

// WriteBit appends one bit to the stream. It panics when the backing
// buffer is full.
func (w *Writer) WriteBit(bit byte) {
	byt := w.n >> 3
	if byt >= len(w.buf) {
		panic("bitbuf: write past end of buffer")
	}
	w.buf[byt : byt+1].ShiftIn(bit)
	w.n++
}

// Len reports the number of bits written.
func (w *Writer) Len() int {
	return w.n
}

// Bytes returns the backing buffer.
func (w *Writer) Bytes() Buffer {
	return w.buf
}

// Reader consumes a bit stream from its tail. It operates on a private
// copy of the source bytes.
type Reader struct {
	buf Buffer
	n   int
}

// NewReader returns a Reader over a copy of the first Size(bits) bytes
// of buf. It returns ErrUnderflow when buf is shorter than that.
func NewReader(buf []byte, bits int) (*Reader, error) {
	need := Size(bits)
	if len(buf) < need {
		return nil, ErrUnderflow
	}
	cpy := make(Buffer, need)
	copy(cpy, buf[:need])
	return &Reader{buf: cpy, n: bits}, nil
}

// ReadBack removes and returns the last remaining bit of the stream.
// It panics when the stream is exhausted.
func (r *Reader) ReadBack() byte {
	if r.n <= 0 {
		panic("bitbuf: read past start of stream")
	}
	r.n--
	byt := r.n >> 3
	return r.buf[byt : byt+1].ShiftOut(0)
}

// Remaining reports the number of unread bits.
func (r *Reader) Remaining() int {
	return r.n
}
