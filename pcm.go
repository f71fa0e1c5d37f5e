package dwav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/audio"
)

// FormatPCM is the fmt chunk format tag for linear PCM audio. It is the only
// tag whose samples this package can interpret; every other encoding passes
// through the container untouched.
const FormatPCM uint16 = 1

// Format returns the audio format of the file's sample data.
func (f *File) Format() *audio.Format {
	if f == nil || f.FmtChunk == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(f.FmtChunk.NumChannels),
		SampleRate:  int(f.FmtChunk.SampleRate),
	}
}

// IntBuffer decodes the PCM sample payload into an audio.IntBuffer, one int
// per sample value, channels interleaved. Only linear PCM files are
// supported; anything else fails without touching the model.
func (f *File) IntBuffer() (*audio.IntBuffer, error) {
	if f == nil || f.FmtChunk == nil || f.Data == nil {
		return nil, errNilFile
	}

	if f.FmtChunk.FormatTag != FormatPCM {
		return nil, fmt.Errorf("format tag %d - %w", f.FmtChunk.FormatTag, errUnsupportedWavFormat)
	}

	bitDepth := int(f.FmtChunk.BitsPerSample)

	decodeF, err := sampleDecodeFunc(bitDepth)
	if err != nil {
		return nil, fmt.Errorf("could not get sample decode func %w", err)
	}

	bPerSample := bytesPerSample(bitDepth)
	sampleBuf := make([]byte, bPerSample)
	r := bytes.NewReader(f.Data.Data)
	data := make([]int, 0, len(f.Data.Data)/bPerSample)

	for {
		sample, err := decodeF(r, sampleBuf)
		if err != nil {
			// a trailing partial sample is padding, not a value
			break
		}

		data = append(data, sample)
	}

	return &audio.IntBuffer{
		Format:         f.Format(),
		SourceBitDepth: bitDepth,
		Data:           data,
	}, nil
}

// sampleDecodeFunc returns a function that converts a byte range into an int
// value based on the amount of bits used per sample.
// Note that 8bit samples are unsigned, all other values are signed.
func sampleDecodeFunc(bitsPerSample int) (func(io.Reader, []byte) (int, error), error) {
	// NOTE: WAV PCM data is stored using little-endian
	switch {
	case bitsPerSample == 8:
		// 8bit values are unsigned
		return func(r io.Reader, buf []byte) (int, error) {
			_, err := io.ReadFull(r, buf[:1])
			return int(buf[0]), err
		}, nil
	case bitsPerSample > 8 && bitsPerSample <= 16:
		return func(r io.Reader, buf []byte) (int, error) {
			_, err := io.ReadFull(r, buf[:2])
			return int(int16(binary.LittleEndian.Uint16(buf[:2]))), err
		}, nil
	case bitsPerSample > 16 && bitsPerSample <= 24:
		return func(r io.Reader, buf []byte) (int, error) {
			_, err := io.ReadFull(r, buf[:3])
			if err != nil {
				return 0, fmt.Errorf("failed to read 24-bit sample: %w", err)
			}

			return int(audio.Int24LETo32(buf[:3])), nil
		}, nil
	case bitsPerSample > 24 && bitsPerSample <= 32:
		return func(r io.Reader, buf []byte) (int, error) {
			_, err := io.ReadFull(r, buf[:4])
			return int(int32(binary.LittleEndian.Uint32(buf[:4]))), err
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", errUnhandledByteDepth, bitsPerSample)
	}
}
