package wave

// Option configures a Decoder.
type Option func(*Decoder)

// WithStrictRIFFSize rejects files whose RIFF header declares more bytes than
// the buffer holds. By default the declared size is ignored and the buffer
// length is used as the outer bound.
func WithStrictRIFFSize() Option {
	return func(d *Decoder) {
		d.strictSize = true
	}
}

// WithChunkPayloads keeps a copy of every skipped chunk's payload in
// Audio.Chunks.
func WithChunkPayloads() Option {
	return func(d *Decoder) {
		d.keepPayloads = true
	}
}
