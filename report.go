package dwav

import (
	"fmt"
	"strings"
)

// Describe renders a fixed-section, human-readable summary of the parsed
// file: RIFF fields, format fields, data chunk size, and the list of unknown
// chunks with their tags and sizes. Extra format parameters are flagged by
// presence and length only; their bytes are never dumped. The model is not
// mutated.
func (f *File) Describe() string {
	if f == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "RIFF ELEMENTS\n")
	fmt.Fprintf(&b, "Chunk ID: RIFF\n")
	fmt.Fprintf(&b, "Chunk Size: %d\n", f.RiffSize)
	fmt.Fprintf(&b, "Format: WAVE\n")

	fmt.Fprintf(&b, "\nFORMAT ELEMENTS\n")

	if f.FmtChunk != nil {
		fmt.Fprintf(&b, "Subchunk ID: fmt\n")
		fmt.Fprintf(&b, "Subchunk Size: %d\n", f.FmtChunk.Size())
		fmt.Fprintf(&b, "Audio Format: %d\n", f.FmtChunk.FormatTag)
		fmt.Fprintf(&b, "Number of Channels: %d\n", f.FmtChunk.NumChannels)
		fmt.Fprintf(&b, "Sample Rate: %d\n", f.FmtChunk.SampleRate)
		fmt.Fprintf(&b, "Byte Rate: %d\n", f.FmtChunk.AvgBytesPerSec)
		fmt.Fprintf(&b, "Block Align: %d\n", f.FmtChunk.BlockAlign)
		fmt.Fprintf(&b, "Bits Per Sample: %d\n", f.FmtChunk.BitsPerSample)

		if f.FmtChunk.HasExtraParams() {
			fmt.Fprintf(&b, "Extra Parameters: Yes (%d bytes)\n", len(f.FmtChunk.ExtraData))
		} else {
			fmt.Fprintf(&b, "Extra Parameters: No\n")
		}
	}

	fmt.Fprintf(&b, "\nDATA ELEMENTS\n")

	if f.Data != nil {
		fmt.Fprintf(&b, "Subchunk ID: data\n")
		fmt.Fprintf(&b, "Subchunk Size: %d\n", len(f.Data.Data))
	}

	fmt.Fprintf(&b, "\nExtra Subchunks Found: %d\n", len(f.UnknownChunks))

	for _, chunk := range f.UnknownChunks {
		fmt.Fprintf(&b, "%s of Size %d\n", chunkIDString(chunk.ID), chunk.Size)
	}

	return b.String()
}

func chunkIDString(id [4]byte) string {
	return string(id[:])
}
