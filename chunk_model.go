package dwav

// RawChunk stores a non-core RIFF/WAV chunk for round-trip preservation.
type RawChunk struct {
	ID [4]byte
	// Size mirrors len(Data) for preserved chunks.
	Size uint32
	Data []byte
	// Order is the chunk's index among the unknown chunks found during
	// decode; chunks are re-emitted in ascending Order.
	Order int
}

func (c RawChunk) Clone() RawChunk {
	out := c
	out.Data = append([]byte(nil), c.Data...)

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

// DataChunk stores the terminal data chunk: the flat sample payload.
// Frame boundaries are external, defined by the fmt chunk's block alignment.
type DataChunk struct {
	// Size mirrors len(Data) as read from the chunk header.
	Size uint32
	Data []byte
}

func (c *DataChunk) Clone() *DataChunk {
	if c == nil {
		return nil
	}

	return &DataChunk{
		Size: c.Size,
		Data: append([]byte(nil), c.Data...),
	}
}
