package wave

import "fmt"

// RawChunk describes a chunk the decoder skipped without interpreting it.
type RawChunk struct {
	ID [4]byte
	// Size is the declared payload size, excluding the alignment byte.
	Size uint32
	// Offset is the position of the chunk ID in the input buffer.
	Offset int
	// ListType is the list type of a skipped LIST chunk.
	ListType [4]byte
	// List is the list type of the enclosing LIST chunk, zero at the top level.
	List [4]byte
	// BeforeData indicates if this chunk appeared before any sample data.
	BeforeData bool
	// Data holds a copy of the payload when WithChunkPayloads is set.
	Data []byte
}

func (c RawChunk) String() string {
	name := string(c.ID[:])
	if c.ID == CIDList {
		name += "(" + string(c.ListType[:]) + ")"
	}

	if c.List != ([4]byte{}) {
		name = string(c.List[:]) + "/" + name
	}

	return fmt.Sprintf("%q %d bytes @%d", name, c.Size, c.Offset)
}

// Clone returns a copy of c that doesn't share its payload.
func (c RawChunk) Clone() RawChunk {
	out := c
	if c.Data != nil {
		out.Data = append([]byte(nil), c.Data...)
	}

	return out
}

func cloneRawChunks(chunks []RawChunk) []RawChunk {
	if len(chunks) == 0 {
		return nil
	}

	out := make([]RawChunk, len(chunks))
	for i := range chunks {
		out[i] = chunks[i].Clone()
	}

	return out
}
