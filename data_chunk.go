package wave

import (
	"fmt"

	"github.com/go-audio/riff"
)

// sampleDecodeFunc returns a function that reads one sample from the cursor
// based on the amount of bits used per sample, along with the number of
// bytes each sample occupies.
// Note that 8bit samples are unsigned, 16bit samples are signed.
func sampleDecodeFunc(bitsPerSample uint16) (func(*cursor) (Sample, error), int, error) {
	switch {
	case bitsPerSample <= 8:
		return func(c *cursor) (Sample, error) {
			b, err := c.read(1)
			if err != nil {
				return Sample{}, err
			}

			return Uint8Sample(b[0]), nil
		}, 1, nil
	case bitsPerSample <= 16:
		return func(c *cursor) (Sample, error) {
			v, err := c.readInt16LE()
			if err != nil {
				return Sample{}, err
			}

			return Int16Sample(v), nil
		}, 2, nil
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitsPerSample)
	}
}

// decodeDataChunk reads a data chunk into the audio channels. The cursor must
// sit on the size field, right after the "data" ID. Frames are decoded while a
// whole frame fits in the chunk; trailing bytes of a partial frame are
// skipped.
func (p *parser) decodeDataChunk() error {
	chans := len(p.audio.Channels)
	if chans != 1 && chans != 2 {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannelCount, chans)
	}

	decodeF, width, err := sampleDecodeFunc(p.audio.BitsPerSample)
	if err != nil {
		return err
	}

	size, err := p.c.readSize()
	if err != nil {
		return err
	}

	if size > p.c.remaining() {
		return fmt.Errorf("%w: data chunk declares %d bytes, %d left", ErrOutOfBounds, size, p.c.remaining())
	}

	end := p.c.offset() + size
	frameSize := width * chans
	frames := size / frameSize

	for ch := range p.audio.Channels {
		p.audio.Channels[ch] = growSamples(p.audio.Channels[ch], frames)
	}

	for f := 0; f < frames; f++ {
		for ch := 0; ch < chans; ch++ {
			s, err := decodeF(p.c)
			if err != nil {
				return fmt.Errorf("failed to decode sample: %w", err)
			}

			p.audio.Channels[ch] = append(p.audio.Channels[ch], s)
		}
	}

	if rest := end - p.c.offset(); rest > 0 {
		if _, err := p.c.read(rest); err != nil {
			return err
		}
	}

	p.seenData = true

	return p.c.skipPad(size)
}

// decodeWaveList reads a LIST chunk of type wavl. The cursor must sit on the
// size field of the LIST chunk. data chunks are decoded in order; slnt and
// any other chunks are skipped.
func (p *parser) decodeWaveList() error {
	size, err := p.c.readSize()
	if err != nil {
		return err
	}

	end := p.c.offset() + size

	// the list type was already matched
	if _, err := p.c.read(idSize); err != nil {
		return err
	}

	parent := p.list
	p.list = CIDWavl

	defer func() { p.list = parent }()

	for p.c.offset() < end && !p.c.eof() {
		hdr := p.c.offset()

		id, err := p.c.readID()
		if err != nil {
			return fmt.Errorf("failed to read wavl member ID: %w", err)
		}

		switch id {
		case riff.DataFormatID:
			err = p.decodeDataChunk()
		default:
			// slnt chunks and anything unknown
			err = p.skipChunk(id, hdr)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func growSamples(s []Sample, n int) []Sample {
	if cap(s)-len(s) >= n {
		return s
	}

	out := make([]Sample, len(s), len(s)+n)
	copy(out, s)

	return out
}
