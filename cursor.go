package wave

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	idSize     = 4
	sizeSize   = 4
	headerSize = idSize + sizeSize
)

// cursor walks an in-memory RIFF buffer. Every read goes through peek so the
// offset can never leave [0, len(buf)].
type cursor struct {
	buf []byte
	pos int
}

func newCursor(b []byte) *cursor {
	return &cursor{buf: b}
}

func (c *cursor) offset() int { return c.pos }

func (c *cursor) len() int { return len(c.buf) }

func (c *cursor) eof() bool { return c.pos == len(c.buf) }

func (c *cursor) remaining() int { return len(c.buf) - c.pos }

// peek returns the next n bytes without advancing. The slice aliases the
// underlying buffer.
func (c *cursor) peek(n int) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, fmt.Errorf("%w: %d bytes at offset %d (len %d)", ErrOutOfBounds, n, c.pos, len(c.buf))
	}

	return c.buf[c.pos : c.pos+n], nil
}

func (c *cursor) read(n int) ([]byte, error) {
	b, err := c.peek(n)
	if err != nil {
		return nil, err
	}

	c.pos += n

	return b, nil
}

// seek moves the cursor to pos. The end of the buffer is not a valid target:
// a seek always precedes another read.
func (c *cursor) seek(pos int) error {
	if pos < 0 || pos >= len(c.buf) {
		return fmt.Errorf("%w: seek to %d (len %d)", ErrOutOfBounds, pos, len(c.buf))
	}

	c.pos = pos

	return nil
}

// rewind restores a previously recorded offset. Unlike seek it accepts the
// buffer end, since a saved position may legitimately be there.
func (c *cursor) rewind(pos int) {
	if pos == len(c.buf) {
		c.pos = pos
		return
	}

	if err := c.seek(pos); err != nil {
		panic(err)
	}
}

func (c *cursor) readID() ([4]byte, error) {
	var id [4]byte

	b, err := c.read(idSize)
	if err != nil {
		return id, err
	}

	copy(id[:], b)

	return id, nil
}

// peekID reports whether the next four bytes equal id.
func (c *cursor) peekID(id [4]byte) bool {
	b, err := c.peek(idSize)
	if err != nil {
		return false
	}

	return [4]byte(b) == id
}

func (c *cursor) readUint16LE() (uint16, error) {
	b, err := c.read(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) readInt16LE() (int16, error) {
	v, err := c.readUint16LE()
	return int16(v), err
}

func (c *cursor) readUint32LE() (uint32, error) {
	b, err := c.read(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

// readSize reads a chunk size field. Sizes that don't fit an int can never
// address the buffer and are reported as out of bounds.
func (c *cursor) readSize() (int, error) {
	size, err := c.readUint32LE()
	if err != nil {
		return 0, fmt.Errorf("failed to read chunk size: %w", err)
	}

	if uint64(size) > math.MaxInt {
		return 0, fmt.Errorf("%w: chunk size %d", ErrOutOfBounds, size)
	}

	return int(size), nil
}

// skipPad consumes the RIFF word alignment byte that follows a chunk with an
// odd size. A missing alignment byte at the very end of the buffer is
// tolerated.
func (c *cursor) skipPad(size int) error {
	if size%2 == 0 || c.eof() {
		return nil
	}

	_, err := c.read(1)

	return err
}
