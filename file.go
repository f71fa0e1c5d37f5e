package dwav

import "time"

// File is the in-memory model of a parsed WAV container: the RIFF header,
// the fmt chunk, the unknown chunks found between fmt and data (in their
// original order) and exactly one data chunk.
//
// A File is built once per input by a Decoder, optionally edited in place
// (SetSampleRate, ReverseFrames), then reported or handed to an Encoder.
// Nothing in the model clamps or revalidates field combinations; edits
// validate their own inputs before mutating.
type File struct {
	// RiffSize is the RIFF chunk size as read from the input. The encoder
	// ignores it and recomputes the size from the model on write.
	RiffSize      uint32
	FmtChunk      *FmtChunk
	UnknownChunks []RawChunk
	Data          *DataChunk
}

// FrameSize returns the size of one sample frame in bytes (the fmt chunk's
// block alignment).
func (f *File) FrameSize() int {
	if f == nil || f.FmtChunk == nil {
		return 0
	}

	return int(f.FmtChunk.BlockAlign)
}

// DataLen returns the length of the sample payload in bytes.
func (f *File) DataLen() int {
	if f == nil || f.Data == nil {
		return 0
	}

	return len(f.Data.Data)
}

// NumFrames returns the number of whole sample frames in the data chunk.
func (f *File) NumFrames() int {
	frameSize := f.FrameSize()
	if frameSize <= 0 {
		return 0
	}

	return f.DataLen() / frameSize
}

// Duration returns the play time of the data chunk at the tagged sample
// rate, or zero when the model is incomplete.
func (f *File) Duration() time.Duration {
	if f == nil || f.FmtChunk == nil {
		return 0
	}

	return time.Duration(f.NumFrames()) * sampleDuration(int(f.FmtChunk.SampleRate))
}
