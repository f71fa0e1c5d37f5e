package dwav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// DefaultMaxUnknownChunks caps how many non-core chunks a decoder accepts
// between the fmt and data chunks unless configured otherwise.
const DefaultMaxUnknownChunks = 10

// Decoder parses a whole in-memory WAV file into a File.
type Decoder struct {
	r      *bytes.Reader
	parser *riff.Parser

	// MaxUnknownChunks overrides DefaultMaxUnknownChunks when positive.
	MaxUnknownChunks int
}

// NewDecoder creates a decoder over the passed file bytes. The slice is only
// read, never retained: chunk payloads are copied into the model.
func NewDecoder(data []byte) *Decoder {
	r := bytes.NewReader(data)

	return &Decoder{
		r:      r,
		parser: riff.New(r),
	}
}

// Decode walks the buffer and builds the chunk model. It fails without
// producing a model when the input is malformed; see the Err* sentinels for
// the failure taxonomy.
func (d *Decoder) Decode() (*File, error) {
	if d == nil || d.r == nil {
		return nil, errNilFile
	}

	file := &File{}

	if err := d.readRIFFHeader(file); err != nil {
		return nil, err
	}

	if err := d.readFmtChunk(file); err != nil {
		return nil, err
	}

	if err := d.readChunksUntilData(file); err != nil {
		return nil, err
	}

	return file, nil
}

// Decode parses the passed WAV file bytes with default limits.
func Decode(data []byte) (*File, error) {
	return NewDecoder(data).Decode()
}

func (d *Decoder) readRIFFHeader(file *File) error {
	id, size, err := d.parser.IDnSize()
	if err != nil {
		return fmt.Errorf("failed to read the RIFF header - %w", ErrMalformedHeader)
	}

	if id != riff.RiffID {
		return fmt.Errorf("chunk ID %q - %w", id, ErrMalformedHeader)
	}

	d.parser.ID = id
	d.parser.Size = size

	if err := binary.Read(d.r, binary.BigEndian, &d.parser.Format); err != nil {
		return fmt.Errorf("failed to read the container format - %w", ErrMalformedHeader)
	}

	if d.parser.Format != riff.WavFormatID {
		return fmt.Errorf("container format %q - %w", d.parser.Format, ErrMalformedHeader)
	}

	file.RiffSize = size

	return nil
}

func (d *Decoder) readFmtChunk(file *File) error {
	id, size, err := d.parser.IDnSize()
	if err != nil {
		return fmt.Errorf("failed to read the fmt chunk header - %w", ErrMalformedFmtChunk)
	}

	if id != riff.FmtID {
		return fmt.Errorf("chunk ID %q - %w", id, ErrMalformedFmtChunk)
	}

	if size < fmtChunkMinSize {
		return fmt.Errorf("declared size %d - %w", size, ErrMalformedFmtChunk)
	}

	if int(size) > d.r.Len() {
		return fmt.Errorf("fmt chunk declares %d bytes with %d remaining - %w",
			size, d.r.Len(), ErrTruncatedChunk)
	}

	chunk := &riff.Chunk{
		ID:   id,
		Size: int(size),
		R:    io.LimitReader(d.r, int64(size)),
	}

	fmtChunk, err := decodeFmtChunk(chunk)
	if err != nil {
		return err
	}

	d.parser.NumChannels = fmtChunk.NumChannels
	d.parser.SampleRate = fmtChunk.SampleRate
	d.parser.AvgBytesPerSec = fmtChunk.AvgBytesPerSec
	d.parser.BlockAlign = fmtChunk.BlockAlign
	d.parser.BitsPerSample = fmtChunk.BitsPerSample
	d.parser.WavAudioFormat = fmtChunk.FormatTag

	file.FmtChunk = fmtChunk

	return nil
}

func decodeFmtChunk(chunk *riff.Chunk) (*FmtChunk, error) {
	fmtChunk := &FmtChunk{}

	fields := []struct {
		name string
		dst  any
	}{
		{"format tag", &fmtChunk.FormatTag},
		{"channels", &fmtChunk.NumChannels},
		{"sample rate", &fmtChunk.SampleRate},
		{"avg bytes/sec", &fmtChunk.AvgBytesPerSec},
		{"block align", &fmtChunk.BlockAlign},
		{"bit depth", &fmtChunk.BitsPerSample},
	}

	for _, field := range fields {
		if err := chunk.ReadLE(field.dst); err != nil {
			return nil, fmt.Errorf("failed to read %s - %w", field.name, ErrMalformedFmtChunk)
		}
	}

	if extraSize := chunk.Size - fmtChunkMinSize; extraSize > 0 {
		fmtChunk.ExtraData = make([]byte, extraSize)
		if _, err := io.ReadFull(chunk, fmtChunk.ExtraData); err != nil {
			return nil, fmt.Errorf("failed to read extra format parameters - %w", ErrTruncatedChunk)
		}
	}

	return fmtChunk, nil
}

// readChunksUntilData classifies every chunk after fmt. Anything that isn't
// data is preserved verbatim; the first data chunk terminates the walk, so
// trailing bytes after its payload are never modeled. Declared sizes are
// checked against the remaining buffer before any read. Odd sizes are taken
// at face value: no padding byte is consumed.
func (d *Decoder) readChunksUntilData(file *File) error {
	maxUnknown := d.MaxUnknownChunks
	if maxUnknown <= 0 {
		maxUnknown = DefaultMaxUnknownChunks
	}

	for {
		id, size, err := d.parser.IDnSize()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("end of buffer - %w", ErrMissingDataChunk)
			}

			return fmt.Errorf("failed to read chunk header - %w", err)
		}

		if int(size) > d.r.Len() {
			return fmt.Errorf("chunk %q declares %d bytes with %d remaining - %w",
				id, size, d.r.Len(), ErrTruncatedChunk)
		}

		payload := make([]byte, size)
		if _, err := io.ReadFull(d.r, payload); err != nil {
			return fmt.Errorf("failed to read chunk %q payload - %w", id, ErrTruncatedChunk)
		}

		if id == riff.DataFormatID {
			file.Data = &DataChunk{Size: size, Data: payload}

			return nil
		}

		if len(file.UnknownChunks) >= maxUnknown {
			return fmt.Errorf("more than %d - %w", maxUnknown, ErrTooManyUnknownChunks)
		}

		file.UnknownChunks = append(file.UnknownChunks, RawChunk{
			ID:    id,
			Size:  size,
			Data:  payload,
			Order: len(file.UnknownChunks),
		})
	}
}
