package wave

import (
	"time"

	"github.com/go-audio/audio"
)

// SampleWidth is the storage width of a decoded sample.
type SampleWidth uint8

const (
	// Width8 samples are unsigned bytes.
	Width8 SampleWidth = 8
	// Width16 samples are signed 16-bit integers.
	Width16 SampleWidth = 16
)

// Sample is a single decoded PCM value. Files with a bit depth up to 8 yield
// unsigned 8-bit samples, files up to 16 bits yield signed 16-bit samples.
type Sample struct {
	width SampleWidth
	value int16
}

// Uint8Sample returns an 8-bit unsigned sample.
func Uint8Sample(v uint8) Sample { return Sample{width: Width8, value: int16(v)} }

// Int16Sample returns a 16-bit signed sample.
func Int16Sample(v int16) Sample { return Sample{width: Width16, value: v} }

// Width returns the storage width of s. The zero Sample has width 0.
func (s Sample) Width() SampleWidth { return s.width }

// Uint8 returns the value of an 8-bit sample.
func (s Sample) Uint8() (uint8, bool) {
	if s.width != Width8 {
		return 0, false
	}

	return uint8(s.value), true
}

// Int16 returns the value of a 16-bit sample.
func (s Sample) Int16() (int16, bool) {
	if s.width != Width16 {
		return 0, false
	}

	return s.value, true
}

// Int returns the raw value, unsigned for 8-bit samples and signed for
// 16-bit samples, the same convention go-audio uses for IntBuffer data.
func (s Sample) Int() int { return int(s.value) }

// Audio is the result of decoding a WAVE file.
type Audio struct {
	// Channels holds one sample slice per channel; index 0 is left (or mono),
	// index 1 is right.
	Channels [][]Sample

	WaveFormat    WaveFormat
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	// Chunks lists the chunks that were skipped during decoding, in file order.
	Chunks []RawChunk
}

// NumChannels returns the channel count declared by the fmt chunk.
func (a *Audio) NumChannels() int {
	if a == nil {
		return 0
	}

	return len(a.Channels)
}

// NumFrames returns the number of sample frames, which is the length of every
// channel.
func (a *Audio) NumFrames() int {
	if a == nil || len(a.Channels) == 0 {
		return 0
	}

	return len(a.Channels[0])
}

// Duration returns the playing time of the decoded samples.
func (a *Audio) Duration() time.Duration {
	if a == nil || a.SampleRate == 0 {
		return 0
	}

	return time.Duration(int64(a.NumFrames()) * int64(time.Second) / int64(a.SampleRate))
}

// Format returns the go-audio format of the decoded content.
func (a *Audio) Format() *audio.Format {
	if a == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: len(a.Channels),
		SampleRate:  int(a.SampleRate),
	}
}

// IntBuffer returns the samples interleaved in a go-audio IntBuffer.
// 8-bit samples keep their unsigned representation.
func (a *Audio) IntBuffer() *audio.IntBuffer {
	if a == nil {
		return nil
	}

	frames := a.NumFrames()
	chans := len(a.Channels)

	buf := &audio.IntBuffer{
		Format:         a.Format(),
		Data:           make([]int, frames*chans),
		SourceBitDepth: int(a.BitsPerSample),
	}

	for i := 0; i < frames; i++ {
		for ch := 0; ch < chans; ch++ {
			buf.Data[i*chans+ch] = a.Channels[ch][i].Int()
		}
	}

	return buf
}

// Equal reports whether a and b hold the same format and samples. The chunk
// inventory is not compared.
func (a *Audio) Equal(b *Audio) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.WaveFormat != b.WaveFormat || a.SampleRate != b.SampleRate || a.ByteRate != b.ByteRate ||
		a.BlockAlign != b.BlockAlign || a.BitsPerSample != b.BitsPerSample {
		return false
	}

	if len(a.Channels) != len(b.Channels) {
		return false
	}

	for ch := range a.Channels {
		if len(a.Channels[ch]) != len(b.Channels[ch]) {
			return false
		}

		for i := range a.Channels[ch] {
			if a.Channels[ch][i] != b.Channels[ch][i] {
				return false
			}
		}
	}

	return true
}
