package dwav

// fmtChunkMinSize is the canonical fmt payload size without extra parameters.
const fmtChunkMinSize = 16

// FmtChunk stores the parsed WAV fmt chunk.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	// ExtraData holds the extra format parameters verbatim when the declared
	// chunk size exceeds the canonical 16 bytes. The blob is opaque to this
	// package and round-trips untouched.
	ExtraData []byte
}

func (f *FmtChunk) Clone() *FmtChunk {
	if f == nil {
		return nil
	}

	out := *f
	out.ExtraData = append([]byte(nil), f.ExtraData...)

	return &out
}

// Size returns the fmt chunk payload size as serialized on the wire.
func (f *FmtChunk) Size() uint32 {
	if f == nil {
		return 0
	}

	return fmtChunkMinSize + uint32(len(f.ExtraData))
}

// HasExtraParams reports whether extra format parameters are present.
func (f *FmtChunk) HasExtraParams() bool {
	return f != nil && len(f.ExtraData) > 0
}
