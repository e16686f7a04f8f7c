package wave

import (
	"fmt"

	"github.com/go-audio/riff"
)

var (
	// CIDWave is the RIFF form type of WAVE files.
	CIDWave = [4]byte{'W', 'A', 'V', 'E'}
	// CIDList is the chunk ID for a LIST chunk.
	CIDList = [4]byte{'L', 'I', 'S', 'T'}
	// CIDFact is the chunk ID for the fact chunk.
	CIDFact = [4]byte{'f', 'a', 'c', 't'}
	// CIDCue is the chunk ID for the cue chunk.
	CIDCue = [4]byte{'c', 'u', 'e', 0x20}
	// CIDPlst is the chunk ID for the playlist chunk.
	CIDPlst = [4]byte{'p', 'l', 's', 't'}
	// CIDAdtl is the list type of the associated data list.
	CIDAdtl = [4]byte{'a', 'd', 't', 'l'}
	// CIDWavl is the list type of a wave list holding data and slnt chunks.
	CIDWavl = [4]byte{'w', 'a', 'v', 'l'}
	// CIDSlnt is the chunk ID for a silence chunk inside a wave list.
	CIDSlnt = [4]byte{'s', 'l', 'n', 't'}
	// CIDLabl is the chunk ID for a cue label.
	CIDLabl = [4]byte{'l', 'a', 'b', 'l'}
	// CIDNote is the chunk ID for a cue note.
	CIDNote = [4]byte{'n', 'o', 't', 'e'}
	// CIDLtxt is the chunk ID for a labeled text chunk.
	CIDLtxt = [4]byte{'l', 't', 'x', 't'}
	// CIDFile is the chunk ID for an embedded file chunk.
	CIDFile = [4]byte{'f', 'i', 'l', 'e'}

	// optionalChunks are skipped, in this order, between fmt and the data.
	optionalChunks = [][4]byte{CIDFact, CIDCue, CIDPlst}
	// adtlMembers must all be present, in this order, in an adtl list.
	adtlMembers = [][4]byte{CIDLabl, CIDNote, CIDLtxt, CIDFile}
)

// Decoder decodes WAVE files held in memory. The zero value is ready to use
// and a Decoder may be shared by concurrent Decode calls.
type Decoder struct {
	strictSize   bool
	keepPayloads bool
}

// NewDecoder returns a decoder configured with the given options.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Decode parses a complete WAVE file. Only PCM mono or stereo audio with up
// to 16 bits per sample is supported. Chunks the decoder doesn't interpret are
// skipped and listed in Audio.Chunks. On error no audio is returned.
func Decode(b []byte, opts ...Option) (*Audio, error) {
	return NewDecoder(opts...).Decode(b)
}

// Decode parses a complete WAVE file.
func (d *Decoder) Decode(b []byte) (*Audio, error) {
	if d == nil {
		d = &Decoder{}
	}

	p := &parser{
		c:            newCursor(b),
		audio:        &Audio{},
		keepPayloads: d.keepPayloads,
	}

	if err := p.readHeaders(d.strictSize); err != nil {
		return nil, err
	}

	if err := p.readWaveForm(); err != nil {
		return nil, err
	}

	return p.audio, nil
}

// readHeaders checks the RIFF header and the WAVE form type.
func (p *parser) readHeaders(strictSize bool) error {
	if !p.c.peekID(riff.RiffID) {
		return fmt.Errorf("%w: missing RIFF header", ErrNotAWaveFile)
	}

	if _, err := p.c.read(idSize); err != nil {
		return err
	}

	size, err := p.c.readSize()
	if err != nil {
		return fmt.Errorf("failed to read RIFF size: %w", err)
	}

	if strictSize && size > p.c.len()-headerSize {
		return fmt.Errorf("%w: RIFF chunk declares %d bytes but only %d are available",
			ErrNotAWaveFile, size, p.c.len()-headerSize)
	}

	if !p.c.peekID(CIDWave) {
		return fmt.Errorf("%w: RIFF form type is not WAVE", ErrNotAWaveFile)
	}

	if _, err := p.c.read(idSize); err != nil {
		return err
	}

	return nil
}

// readWaveForm walks the chunks of the WAVE form: fmt, the optional metadata
// chunks, then the audio data.
func (p *parser) readWaveForm() error {
	end := p.c.len()

	ok, err := p.matchChunk(riff.FmtID, end)
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%w: fmt", ErrMissingRequiredChunk)
	}

	fmtChunk, err := decodeFmtChunk(p.c)
	if err != nil {
		return fmt.Errorf("failed to decode fmt chunk: %w", err)
	}

	if err := fmtChunk.apply(p.audio); err != nil {
		return err
	}

	for _, id := range optionalChunks {
		if err := p.acceptOptional(id, end); err != nil {
			return err
		}
	}

	start, mark := p.c.offset(), len(p.audio.Chunks)

	ok, err = p.matchList(CIDAdtl, end)
	if err != nil {
		return err
	}

	if ok && p.crossedAudio(mark) {
		p.restore(start, mark)
		ok = false
	}

	if ok {
		if err := p.decodeAssociatedDataList(); err != nil {
			return err
		}
	}

	if err := p.readAudioData(end); err != nil {
		return err
	}

	return p.skipTrailing(end)
}

// skipTrailing records the chunks that follow the audio data.
func (p *parser) skipTrailing(end int) error {
	for p.c.offset() < end && !p.c.eof() {
		hdr := p.c.offset()

		id, err := p.c.readID()
		if err != nil {
			return fmt.Errorf("failed to read trailing chunk ID: %w", err)
		}

		if err := p.skipChunk(id, hdr); err != nil {
			return err
		}
	}

	return nil
}

// acceptOptional skips the chunk id if it is found before end. A match that
// lies past the audio data is left for skipTrailing.
func (p *parser) acceptOptional(id [4]byte, end int) error {
	start, mark := p.c.offset(), len(p.audio.Chunks)

	ok, err := p.matchChunk(id, end)
	if err != nil || !ok {
		return err
	}

	if p.crossedAudio(mark) {
		p.restore(start, mark)
		return nil
	}

	return p.skipChunk(id, p.c.offset()-idSize)
}

// crossedAudio reports whether a data chunk or a wavl list was discarded
// since the inventory held mark entries.
func (p *parser) crossedAudio(mark int) bool {
	for _, c := range p.audio.Chunks[mark:] {
		if c.ID == riff.DataFormatID || (c.ID == CIDList && c.ListType == CIDWavl) {
			return true
		}
	}

	return false
}

// readAudioData decodes either a wavl list or a plain data chunk.
func (p *parser) readAudioData(end int) error {
	ok, err := p.matchList(CIDWavl, end)
	if err != nil {
		return err
	}

	if ok {
		return p.decodeWaveList()
	}

	ok, err = p.matchChunk(riff.DataFormatID, end)
	if err != nil {
		return err
	}

	if !ok {
		return ErrMissingDataChunk
	}

	return p.decodeDataChunk()
}

// decodeAssociatedDataList walks an adtl list. The cursor must sit on the
// size field of the LIST chunk. The labl, note, ltxt and file members are
// required in that order; everything else in the list is skipped.
func (p *parser) decodeAssociatedDataList() error {
	size, err := p.c.readSize()
	if err != nil {
		return err
	}

	end := p.c.offset() + size
	if end > p.c.len() {
		return fmt.Errorf("%w: adtl list declares %d bytes, %d left", ErrOutOfBounds, size, p.c.remaining())
	}

	if _, err := p.c.read(idSize); err != nil {
		return err
	}

	parent := p.list
	p.list = CIDAdtl

	defer func() { p.list = parent }()

	for _, id := range adtlMembers {
		ok, err := p.matchChunk(id, end)
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("%w: %s in adtl list", ErrMissingRequiredChunk, id[:])
		}

		if err := p.skipChunk(id, p.c.offset()-idSize); err != nil {
			return err
		}
	}

	for p.c.offset() < end && !p.c.eof() {
		hdr := p.c.offset()

		id, err := p.c.readID()
		if err != nil {
			return err
		}

		if err := p.skipChunk(id, hdr); err != nil {
			return err
		}
	}

	return p.c.skipPad(size)
}
