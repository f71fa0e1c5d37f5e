package dwav

// FormatChunk returns a copy of the parsed fmt chunk, if available.
func (f *File) FormatChunk() *FmtChunk {
	if f == nil {
		return nil
	}

	return f.FmtChunk.Clone()
}

// RawChunks returns a copy of the preserved non-core chunks in their
// original order.
func (f *File) RawChunks() []RawChunk {
	if f == nil {
		return nil
	}

	return cloneRawChunks(f.UnknownChunks)
}

// DataBytes returns a copy of the sample payload.
func (f *File) DataBytes() []byte {
	if f == nil || f.Data == nil {
		return nil
	}

	return append([]byte(nil), f.Data.Data...)
}
