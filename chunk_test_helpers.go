package dwav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"testing"
)

type testChunk struct {
	id   string
	size uint32
	data []byte
}

type chunkInventoryEntry struct {
	id   string
	size uint32
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

// makeMinimalWav builds a mono 16-bit PCM file with the four sample frames
// [1,2,3,4] and no extra parameters or unknown chunks.
func makeMinimalWav(t *testing.T) []byte {
	t.Helper()

	var b bytes.Buffer
	writeTestHeader(t, &b)
	writeTestChunk(t, &b, "fmt ", makeFmtPayload(t, nil))
	writeTestChunk(t, &b, "data", []byte{1, 0, 2, 0, 3, 0, 4, 0})

	return patchRiffSize(b.Bytes())
}

// makeWavWithExtraParams builds a file whose fmt chunk declares size 18,
// carrying the two extra bytes passed in.
func makeWavWithExtraParams(t *testing.T, extra []byte) []byte {
	t.Helper()

	var b bytes.Buffer
	writeTestHeader(t, &b)
	writeTestChunk(t, &b, "fmt ", makeFmtPayload(t, extra))
	writeTestChunk(t, &b, "data", []byte{1, 0, 2, 0})

	return patchRiffSize(b.Bytes())
}

// makeWavWithUnknownChunks builds a file with a LIST and a JUNK chunk
// between fmt and data.
func makeWavWithUnknownChunks(t *testing.T) []byte {
	t.Helper()

	var b bytes.Buffer
	writeTestHeader(t, &b)
	writeTestChunk(t, &b, "fmt ", makeFmtPayload(t, nil))
	writeTestChunk(t, &b, "LIST", []byte{'I', 'N', 'F', 'O', 0x01, 0x02})
	writeTestChunk(t, &b, "JUNK", []byte{0x09, 0x08, 0x07, 0x06})
	writeTestChunk(t, &b, "data", []byte{1, 0, 2, 0, 3, 0, 4, 0})

	return patchRiffSize(b.Bytes())
}

func makeFmtPayload(t *testing.T, extra []byte) []byte {
	t.Helper()

	payload := make([]byte, fmtChunkMinSize, fmtChunkMinSize+len(extra))
	binary.LittleEndian.PutUint16(payload[0:2], FormatPCM)
	binary.LittleEndian.PutUint16(payload[2:4], 1)
	binary.LittleEndian.PutUint32(payload[4:8], 8000)
	binary.LittleEndian.PutUint32(payload[8:12], 16000)
	binary.LittleEndian.PutUint16(payload[12:14], 2)
	binary.LittleEndian.PutUint16(payload[14:16], 16)

	return append(payload, extra...)
}

func writeTestHeader(t *testing.T, b *bytes.Buffer) {
	t.Helper()

	b.WriteString("RIFF")

	err := binary.Write(b, binary.LittleEndian, uint32(0))
	if err != nil {
		t.Fatalf("write riff size placeholder: %v", err)
	}

	b.WriteString("WAVE")
}

// writeTestChunk emits tag, size and payload. No padding byte is appended
// for odd payloads; the package under test takes sizes at face value.
func writeTestChunk(t *testing.T, b *bytes.Buffer, id string, payload []byte) {
	t.Helper()

	if len(id) != 4 {
		t.Fatalf("chunk id must be 4 bytes, got %q", id)
	}

	b.WriteString(id)

	err := binary.Write(b, binary.LittleEndian, uint32(len(payload)))
	if err != nil {
		t.Fatalf("write chunk size for %q: %v", id, err)
	}

	if _, err := b.Write(payload); err != nil {
		t.Fatalf("write chunk payload for %q: %v", id, err)
	}
}

func patchRiffSize(out []byte) []byte {
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))

	return out
}

func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < 12 {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	chunks := make([]testChunk, 0)

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		payload := append([]byte(nil), data[offset:end]...)
		chunks = append(chunks, testChunk{id: id, size: size, data: payload})

		offset = end
	}

	return chunks, nil
}

func findChunk(chunks []testChunk, id string) (*testChunk, int) {
	for i := range chunks {
		if chunks[i].id == id {
			return &chunks[i], i
		}
	}

	return nil, -1
}

func buildChunkInventory(chunks []testChunk) []chunkInventoryEntry {
	out := make([]chunkInventoryEntry, 0, len(chunks))
	for _, ch := range chunks {
		out = append(out, chunkInventoryEntry{id: ch.id, size: ch.size})
	}

	return out
}
