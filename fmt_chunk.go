package wave

import (
	"bytes"
	"fmt"

	"github.com/go-audio/riff"
)

// fmtChunkMinSize is the size of the PCM fmt chunk body.
const fmtChunkMinSize = 16

// WaveFormat is the wFormatTag of a fmt chunk. Only the PCM variant is
// supported; values are validated when the fmt chunk is decoded.
type WaveFormat uint16

// WaveFormatPCM is linear pulse code modulation.
const WaveFormatPCM WaveFormat = 0x0001

func (f WaveFormat) String() string {
	switch f {
	case WaveFormatPCM:
		return "PCM"
	default:
		return fmt.Sprintf("format tag 0x%04x", uint16(f))
	}
}

// parseWaveFormat is the only way to turn a raw format tag into a WaveFormat.
func parseWaveFormat(tag uint16) (WaveFormat, error) {
	switch WaveFormat(tag) {
	case WaveFormatPCM:
		return WaveFormatPCM, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, WaveFormat(tag))
	}
}

// FmtChunk stores the parsed WAV fmt chunk.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

// decodeFmtChunk reads a fmt chunk body. The cursor must sit on the size
// field, right after the "fmt " ID. Any extension bytes past the PCM fields
// are skipped.
func decodeFmtChunk(c *cursor) (*FmtChunk, error) {
	size, err := c.readSize()
	if err != nil {
		return nil, err
	}

	if size < fmtChunkMinSize {
		return nil, fmt.Errorf("%w: fmt chunk is %d bytes, need %d", ErrOutOfBounds, size, fmtChunkMinSize)
	}

	body, err := c.read(size)
	if err != nil {
		return nil, fmt.Errorf("failed to read fmt chunk: %w", err)
	}

	if err := c.skipPad(size); err != nil {
		return nil, err
	}

	chunk := &riff.Chunk{ID: riff.FmtID, Size: size, R: bytes.NewReader(body)}
	fmtChunk := &FmtChunk{}

	if err := chunk.ReadLE(&fmtChunk.FormatTag); err != nil {
		return nil, fmt.Errorf("failed to read wav format: %w", err)
	}

	if err := chunk.ReadLE(&fmtChunk.NumChannels); err != nil {
		return nil, fmt.Errorf("failed to read channels: %w", err)
	}

	if err := chunk.ReadLE(&fmtChunk.SampleRate); err != nil {
		return nil, fmt.Errorf("failed to read sample rate: %w", err)
	}

	if err := chunk.ReadLE(&fmtChunk.AvgBytesPerSec); err != nil {
		return nil, fmt.Errorf("failed to read avg bytes/sec: %w", err)
	}

	if err := chunk.ReadLE(&fmtChunk.BlockAlign); err != nil {
		return nil, fmt.Errorf("failed to read block align: %w", err)
	}

	if err := chunk.ReadLE(&fmtChunk.BitsPerSample); err != nil {
		return nil, fmt.Errorf("failed to read bit depth: %w", err)
	}

	return fmtChunk, nil
}

// apply copies the format fields into a and allocates one empty sample slice
// per channel.
func (f *FmtChunk) apply(a *Audio) error {
	format, err := parseWaveFormat(f.FormatTag)
	if err != nil {
		return err
	}

	a.WaveFormat = format
	a.SampleRate = f.SampleRate
	a.ByteRate = f.AvgBytesPerSec
	a.BlockAlign = f.BlockAlign
	a.BitsPerSample = f.BitsPerSample
	a.Channels = make([][]Sample, f.NumChannels)

	return nil
}
