package wave

import "fmt"

// parser holds the state of a single Decode call.
type parser struct {
	c     *cursor
	audio *Audio

	keepPayloads bool
	// list is the type of the LIST chunk being walked, zero at the top level.
	list     [4]byte
	seenData bool
}

// matchChunk scans forward from the current offset for a chunk with the given
// ID, discarding every other chunk it meets, until end or the end of the
// buffer. On success the cursor sits right after the matched ID, on the size
// field. When nothing matches, or a read fails, the cursor and the chunk
// inventory are restored to their state on entry.
func (p *parser) matchChunk(id [4]byte, end int) (bool, error) {
	if end > p.c.len() {
		panic(fmt.Sprintf("wave: region end %d past buffer length %d", end, p.c.len()))
	}

	start := p.c.offset()
	mark := len(p.audio.Chunks)

	for p.c.offset() < end && !p.c.eof() {
		hdr := p.c.offset()

		got, err := p.c.readID()
		if err != nil {
			p.restore(start, mark)
			return false, fmt.Errorf("failed to read chunk ID: %w", err)
		}

		if got == id {
			return true, nil
		}

		if err := p.skipChunk(got, hdr); err != nil {
			p.restore(start, mark)
			return false, err
		}
	}

	p.restore(start, mark)

	return false, nil
}

// matchList looks for a LIST chunk of the given list type the same way
// matchChunk looks for a plain chunk. On success the cursor is moved back to
// the size field of the matched LIST chunk so the caller reads the size and
// list type itself.
func (p *parser) matchList(listType [4]byte, end int) (bool, error) {
	start := p.c.offset()
	mark := len(p.audio.Chunks)

	for {
		ok, err := p.matchChunk(CIDList, end)
		if err != nil {
			p.restore(start, mark)
			return false, err
		}

		if !ok {
			break
		}

		hdr := p.c.offset() - idSize

		size, err := p.c.readSize()
		if err != nil {
			p.restore(start, mark)
			return false, err
		}

		got, err := p.c.readID()
		if err != nil {
			p.restore(start, mark)
			return false, fmt.Errorf("failed to read list type: %w", err)
		}

		if got == listType {
			p.c.rewind(hdr + idSize)
			return true, nil
		}

		if err := p.skipListBody(got, hdr, size); err != nil {
			p.restore(start, mark)
			return false, err
		}
	}

	p.restore(start, mark)

	return false, nil
}

// skipChunk discards the chunk whose ID was just read at offset hdr and
// records it in the inventory.
func (p *parser) skipChunk(id [4]byte, hdr int) error {
	size, err := p.c.readSize()
	if err != nil {
		return err
	}

	payload, err := p.c.read(size)
	if err != nil {
		return fmt.Errorf("failed to skip %s chunk: %w", id[:], err)
	}

	if err := p.c.skipPad(size); err != nil {
		return err
	}

	chunk := RawChunk{ID: id, Size: uint32(size), Offset: hdr}
	if id == CIDList && size >= idSize {
		copy(chunk.ListType[:], payload)
	}

	p.record(chunk, payload)

	return nil
}

// skipListBody discards the rest of a LIST chunk once its size and list type
// have been read.
func (p *parser) skipListBody(listType [4]byte, hdr, size int) error {
	if size < idSize {
		return fmt.Errorf("%w: LIST chunk at %d declares %d bytes", ErrOutOfBounds, hdr, size)
	}

	if _, err := p.c.read(size - idSize); err != nil {
		return fmt.Errorf("failed to skip %s list: %w", listType[:], err)
	}

	if err := p.c.skipPad(size); err != nil {
		return err
	}

	payload := p.c.buf[hdr+headerSize : hdr+headerSize+size]
	p.record(RawChunk{ID: CIDList, ListType: listType, Size: uint32(size), Offset: hdr}, payload)

	return nil
}

func (p *parser) record(chunk RawChunk, payload []byte) {
	chunk.List = p.list
	chunk.BeforeData = !p.seenData

	if p.keepPayloads {
		chunk.Data = append([]byte{}, payload...)
	}

	p.audio.Chunks = append(p.audio.Chunks, chunk)
}

func (p *parser) restore(offset, mark int) {
	p.c.rewind(offset)
	p.audio.Chunks = p.audio.Chunks[:mark]
}
