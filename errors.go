package wave

import "errors"

var (
	// ErrNotAWaveFile is returned when the RIFF or WAVE markers are missing.
	ErrNotAWaveFile = errors.New("not a RIFF/WAVE file")
	// ErrMissingRequiredChunk is returned when the fmt chunk, or a required
	// member of an adtl list, can't be found within its parent.
	ErrMissingRequiredChunk = errors.New("required chunk not found")
	// ErrMissingDataChunk indicates that neither a data chunk nor a wavl list
	// was found.
	ErrMissingDataChunk = errors.New("data chunk or wavl list not found")
	// ErrUnsupportedFormat is returned for any format tag other than PCM.
	ErrUnsupportedFormat = errors.New("unsupported wav format")
	// ErrUnsupportedChannelCount is returned when the audio is neither mono
	// nor stereo.
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")
	// ErrUnsupportedBitDepth is returned for samples wider than 16 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrOutOfBounds is returned when a read or seek would cross the end of
	// the buffer, usually because the file is truncated or a size field is
	// corrupt.
	ErrOutOfBounds = errors.New("read out of bounds")
)
