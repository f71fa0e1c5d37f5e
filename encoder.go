package dwav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// Encoder serializes a File back into a wav byte stream.
type Encoder struct {
	w io.Writer

	// WrittenBytes counts every byte written to the underlying writer.
	WrittenBytes int
}

// NewEncoder creates an encoder writing to w. Chunk sizes are known up front
// from the model, so plain sequential writes suffice; no seeking happens.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Marshal serializes the file into a freshly allocated byte slice.
func Marshal(file *File) ([]byte, error) {
	var buf bytes.Buffer

	if err := NewEncoder(&buf).Encode(file); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// AddLE serializes and adds the passed value using little endian.
func (e *Encoder) AddLE(src any) error {
	e.WrittenBytes += binary.Size(src)

	err := binary.Write(e.w, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

// AddBE serializes and adds the passed value using big endian.
func (e *Encoder) AddBE(src any) error {
	e.WrittenBytes += binary.Size(src)

	err := binary.Write(e.w, binary.BigEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write big endian: %w", err)
	}

	return nil
}

// Encode writes the model in canonical chunk order: RIFF header, fmt chunk
// and its extra parameters, unknown chunks in original order, data chunk.
// The RIFF size is recomputed from the model; an identical File always
// serializes to identical bytes.
func (e *Encoder) Encode(file *File) error {
	if e == nil || file == nil || file.FmtChunk == nil || file.Data == nil {
		return errNilFile
	}

	if e.w == nil {
		return errNilWriter
	}

	if err := e.writeRIFFHeader(file); err != nil {
		return err
	}

	if err := e.writeFmtChunk(file.FmtChunk); err != nil {
		return err
	}

	for _, chunk := range file.UnknownChunks {
		if err := e.writeRawChunk(chunk); err != nil {
			return err
		}
	}

	return e.writeDataChunk(file.Data)
}

// riffChunkSize returns the byte count following the RIFF size field: the
// WAVE tag plus every chunk header and payload.
func riffChunkSize(file *File) uint32 {
	size := uint32(4)
	size += 8 + file.FmtChunk.Size()

	for _, chunk := range file.UnknownChunks {
		size += 8 + uint32(len(chunk.Data))
	}

	size += 8 + uint32(len(file.Data.Data))

	return size
}

func (e *Encoder) writeRIFFHeader(file *File) error {
	if err := e.AddBE(riff.RiffID); err != nil {
		return fmt.Errorf("error encoding the RIFF ID - %w", err)
	}

	if err := e.AddLE(riffChunkSize(file)); err != nil {
		return fmt.Errorf("error encoding the RIFF size - %w", err)
	}

	if err := e.AddBE(riff.WavFormatID); err != nil {
		return fmt.Errorf("error encoding the WAVE format ID - %w", err)
	}

	return nil
}

func (e *Encoder) writeFmtChunk(fmtChunk *FmtChunk) error {
	if err := e.AddBE(riff.FmtID); err != nil {
		return fmt.Errorf("error encoding the fmt chunk ID - %w", err)
	}

	if err := e.AddLE(fmtChunk.Size()); err != nil {
		return fmt.Errorf("error encoding the fmt chunk size - %w", err)
	}

	fields := []struct {
		name string
		src  any
	}{
		{"format tag", fmtChunk.FormatTag},
		{"channels", fmtChunk.NumChannels},
		{"sample rate", fmtChunk.SampleRate},
		{"avg bytes/sec", fmtChunk.AvgBytesPerSec},
		{"block align", fmtChunk.BlockAlign},
		{"bit depth", fmtChunk.BitsPerSample},
	}

	for _, field := range fields {
		if err := e.AddLE(field.src); err != nil {
			return fmt.Errorf("error encoding %s - %w", field.name, err)
		}
	}

	if len(fmtChunk.ExtraData) > 0 {
		n, err := e.w.Write(fmtChunk.ExtraData)
		e.WrittenBytes += n

		if err != nil {
			return fmt.Errorf("error encoding extra format parameters - %w", err)
		}
	}

	return nil
}

func (e *Encoder) writeRawChunk(chunk RawChunk) error {
	size := uint32(len(chunk.Data))

	if err := e.AddBE(chunk.ID); err != nil {
		return fmt.Errorf("failed to write raw chunk id %q: %w", chunk.ID, err)
	}

	if err := e.AddLE(size); err != nil {
		return fmt.Errorf("failed to write raw chunk size %q: %w", chunk.ID, err)
	}

	if len(chunk.Data) > 0 {
		n, err := e.w.Write(chunk.Data)
		e.WrittenBytes += n

		if err != nil {
			return fmt.Errorf("failed to write raw chunk payload %q: %w", chunk.ID, err)
		}
	}

	return nil
}

func (e *Encoder) writeDataChunk(data *DataChunk) error {
	if err := e.AddBE(riff.DataFormatID); err != nil {
		return fmt.Errorf("error encoding the data chunk ID - %w", err)
	}

	if err := e.AddLE(uint32(len(data.Data))); err != nil {
		return fmt.Errorf("error encoding the data chunk size - %w", err)
	}

	n, err := e.w.Write(data.Data)
	e.WrittenBytes += n

	if err != nil {
		return fmt.Errorf("error encoding the data chunk payload - %w", err)
	}

	return nil
}
