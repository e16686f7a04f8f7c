package wave

// RawChunks returns a copy of the skipped chunk inventory.
func (a *Audio) RawChunks() []RawChunk {
	if a == nil {
		return nil
	}

	return cloneRawChunks(a.Chunks)
}

// Clone returns a deep copy of a.
func (a *Audio) Clone() *Audio {
	if a == nil {
		return nil
	}

	out := *a
	out.Chunks = cloneRawChunks(a.Chunks)

	if a.Channels != nil {
		out.Channels = make([][]Sample, len(a.Channels))
		for i := range a.Channels {
			out.Channels[i] = append([]Sample(nil), a.Channels[i]...)
		}
	}

	return &out
}
