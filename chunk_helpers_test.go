package wave

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

// walkTopLevelChunks lists the top-level chunks of a WAVE file the way the
// decoder reports skipped chunks, payloads included. It ignores fmt and data
// and doesn't descend into lists.
func walkTopLevelChunks(data []byte) ([]RawChunk, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, ErrNotAWaveFile
	}

	var chunks []RawChunk

	seenData := false
	offset := 12

	for offset+headerSize <= len(data) {
		c := RawChunk{
			ID:         [4]byte(data[offset : offset+idSize]),
			Size:       binary.LittleEndian.Uint32(data[offset+idSize : offset+headerSize]),
			Offset:     offset,
			BeforeData: !seenData,
		}

		start := offset + headerSize
		end := start + int(c.Size)

		if end > len(data) {
			return nil, fmt.Errorf("%w: %q at %d", ErrOutOfBounds, c.ID[:], offset)
		}

		switch c.ID {
		case riff.FmtID:
		case riff.DataFormatID:
			seenData = true
		default:
			c.Data = append([]byte{}, data[start:end]...)
			if c.ID == CIDList && c.Size >= idSize {
				c.ListType = [4]byte(c.Data[:idSize])
			}

			chunks = append(chunks, c)
		}

		offset = end + int(c.Size%2)
	}

	return chunks, nil
}

// chunkBytes encodes a chunk, adding the alignment byte for odd payloads.
func chunkBytes(id string, payload []byte) []byte {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)

	if len(payload)%2 == 1 {
		buf.WriteByte(0)
	}

	return buf.Bytes()
}

// listBytes encodes a LIST chunk of the given type around already encoded
// member chunks.
func listBytes(listType string, members ...[]byte) []byte {
	payload := []byte(listType)
	for _, m := range members {
		payload = append(payload, m...)
	}

	return chunkBytes("LIST", payload)
}

// riffBytes wraps encoded chunks in a RIFF/WAVE header with a correct size.
func riffBytes(chunks ...[]byte) []byte {
	body := []byte("WAVE")
	for _, c := range chunks {
		body = append(body, c...)
	}

	buf := bytes.NewBuffer(nil)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(len(body)))
	buf.Write(body)

	return buf.Bytes()
}

func fmtPayload(formatTag, numChans uint16, sampleRate, byteRate uint32, blockAlign, bitDepth uint16) []byte {
	buf := bytes.NewBuffer(nil)
	binary.Write(buf, binary.LittleEndian, formatTag)
	binary.Write(buf, binary.LittleEndian, numChans)
	binary.Write(buf, binary.LittleEndian, sampleRate)
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bitDepth)

	return buf.Bytes()
}

// pcmFmtChunk returns an encoded PCM fmt chunk with consistent byte rate and
// block align.
func pcmFmtChunk(numChans uint16, sampleRate uint32, bitDepth uint16) []byte {
	blockAlign := numChans * ((bitDepth + 7) / 8)
	return chunkBytes("fmt ", fmtPayload(1, numChans, sampleRate, sampleRate*uint32(blockAlign), blockAlign, bitDepth))
}

// pcmWav builds a canonical fmt + data file.
func pcmWav(numChans uint16, sampleRate uint32, bitDepth uint16, data []byte) []byte {
	return riffBytes(pcmFmtChunk(numChans, sampleRate, bitDepth), chunkBytes("data", data))
}

func int16LE(values ...int16) []byte {
	out := make([]byte, 0, len(values)*2)
	for _, v := range values {
		out = binary.LittleEndian.AppendUint16(out, uint16(v))
	}

	return out
}

func uint32LE(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func channelInts(ch []Sample) []int {
	out := make([]int, len(ch))
	for i, s := range ch {
		out[i] = s.Int()
	}

	return out
}
