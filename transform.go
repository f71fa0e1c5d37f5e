package dwav

import "fmt"

// SetSampleRate retags the file's sample rate and recomputes the average
// byte rate from the block alignment. Chunk sizes and sample data are left
// untouched: the samples simply play back at the new rate.
func (f *File) SetSampleRate(rate int) error {
	if f == nil || f.FmtChunk == nil {
		return errNilFile
	}

	if rate <= 0 {
		return fmt.Errorf("%d - %w", rate, ErrInvalidSampleRate)
	}

	f.FmtChunk.SampleRate = uint32(rate)
	f.FmtChunk.AvgBytesPerSec = uint32(rate) * uint32(f.FmtChunk.BlockAlign)

	return nil
}

// ReverseFrames reverses the order of the sample frames in the data chunk
// in place, keeping the bytes within each frame intact so multi-byte sample
// values and channel interleaving stay coherent. Applying it twice restores
// the original payload.
//
// The block alignment must evenly divide the data length; a payload that
// doesn't split into whole frames is rejected before anything is mutated.
func (f *File) ReverseFrames() error {
	if f == nil || f.FmtChunk == nil || f.Data == nil {
		return errNilFile
	}

	frameSize := int(f.FmtChunk.BlockAlign)
	data := f.Data.Data

	if frameSize <= 0 || len(data)%frameSize != 0 {
		return fmt.Errorf("block align %d against %d data bytes - %w",
			frameSize, len(data), ErrInvalidBlockAlign)
	}

	numFrames := len(data) / frameSize
	scratch := make([]byte, frameSize)

	for i := 0; i < numFrames/2; i++ {
		front := data[i*frameSize : (i+1)*frameSize]
		back := data[(numFrames-1-i)*frameSize : (numFrames-i)*frameSize]

		copy(scratch, front)
		copy(front, back)
		copy(back, scratch)
	}

	return nil
}
