package dwav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecodeMinimalFile(t *testing.T) {
	input := makeMinimalWav(t)

	file, err := Decode(input)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if file.RiffSize != uint32(len(input)-8) {
		t.Fatalf("riff size = %d, want %d", file.RiffSize, len(input)-8)
	}

	fmtChunk := file.FmtChunk
	if fmtChunk == nil {
		t.Fatal("missing fmt chunk")
	}

	if fmtChunk.FormatTag != FormatPCM {
		t.Fatalf("format tag = %d, want %d", fmtChunk.FormatTag, FormatPCM)
	}

	if fmtChunk.NumChannels != 1 {
		t.Fatalf("channels = %d, want 1", fmtChunk.NumChannels)
	}

	if fmtChunk.SampleRate != 8000 {
		t.Fatalf("sample rate = %d, want 8000", fmtChunk.SampleRate)
	}

	if fmtChunk.AvgBytesPerSec != 16000 {
		t.Fatalf("byte rate = %d, want 16000", fmtChunk.AvgBytesPerSec)
	}

	if fmtChunk.BlockAlign != 2 || fmtChunk.BitsPerSample != 16 {
		t.Fatalf("block align/bit depth = %d/%d, want 2/16",
			fmtChunk.BlockAlign, fmtChunk.BitsPerSample)
	}

	if fmtChunk.HasExtraParams() {
		t.Fatalf("unexpected extra params: %v", fmtChunk.ExtraData)
	}

	if len(file.UnknownChunks) != 0 {
		t.Fatalf("unexpected unknown chunks: %d", len(file.UnknownChunks))
	}

	if file.Data == nil {
		t.Fatal("missing data chunk")
	}

	want := []byte{1, 0, 2, 0, 3, 0, 4, 0}
	if !bytes.Equal(file.Data.Data, want) {
		t.Fatalf("data payload = %v, want %v", file.Data.Data, want)
	}

	if file.Data.Size != uint32(len(want)) {
		t.Fatalf("data size = %d, want %d", file.Data.Size, len(want))
	}

	if file.NumFrames() != 4 || file.FrameSize() != 2 {
		t.Fatalf("frames/frame size = %d/%d, want 4/2", file.NumFrames(), file.FrameSize())
	}
}

func TestDecodeCapturesExtraFormatParams(t *testing.T) {
	extra := []byte{0xAB, 0xCD}

	file, err := Decode(makeWavWithExtraParams(t, extra))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !file.FmtChunk.HasExtraParams() {
		t.Fatal("expected extra params to be flagged")
	}

	if !bytes.Equal(file.FmtChunk.ExtraData, extra) {
		t.Fatalf("extra params = %v, want %v", file.FmtChunk.ExtraData, extra)
	}

	if file.FmtChunk.Size() != 18 {
		t.Fatalf("fmt size = %d, want 18", file.FmtChunk.Size())
	}
}

func TestDecodePreservesUnknownChunkOrder(t *testing.T) {
	file, err := Decode(makeWavWithUnknownChunks(t))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(file.UnknownChunks) != 2 {
		t.Fatalf("unknown chunk count = %d, want 2", len(file.UnknownChunks))
	}

	first := file.UnknownChunks[0]
	if first.ID != [4]byte{'L', 'I', 'S', 'T'} || first.Size != 6 || first.Order != 0 {
		t.Fatalf("first unknown chunk = %q size %d order %d", first.ID, first.Size, first.Order)
	}

	second := file.UnknownChunks[1]
	if second.ID != [4]byte{'J', 'U', 'N', 'K'} || second.Order != 1 {
		t.Fatalf("second unknown chunk = %q order %d", second.ID, second.Order)
	}

	if !bytes.Equal(second.Data, []byte{0x09, 0x08, 0x07, 0x06}) {
		t.Fatalf("JUNK payload mismatch: %v", second.Data)
	}
}

func TestDecodeIgnoresBytesAfterDataChunk(t *testing.T) {
	input := append(makeMinimalWav(t), "trailing garbage"...)

	file, err := Decode(input)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if file.DataLen() != 8 {
		t.Fatalf("data len = %d, want 8", file.DataLen())
	}
}

func TestDecodeMalformedInputs(t *testing.T) {
	minimal := makeMinimalWav(t)

	truncatedData := append([]byte(nil), minimal...)
	// declare more data bytes than remain in the buffer
	binary.LittleEndian.PutUint32(truncatedData[len(truncatedData)-12:], 64)

	shrunkenFmt := append([]byte(nil), minimal...)
	binary.LittleEndian.PutUint32(shrunkenFmt[16:20], 12)

	var noData bytes.Buffer
	writeTestHeader(t, &noData)
	writeTestChunk(t, &noData, "fmt ", makeFmtPayload(t, nil))
	writeTestChunk(t, &noData, "JUNK", []byte{1, 2})

	tests := []struct {
		name  string
		input []byte
		want  error
	}{
		{"empty input", nil, ErrMalformedHeader},
		{"not riff", []byte("RIFX1234WAVE"), ErrMalformedHeader},
		{"not wave", []byte("RIFF\x04\x00\x00\x00AIFF"), ErrMalformedHeader},
		{"header only", []byte("RIFF\x04\x00\x00\x00WAVE"), ErrMalformedFmtChunk},
		{"fmt not first", makeWavMissingFmt(t), ErrMalformedFmtChunk},
		{"fmt size below minimum", shrunkenFmt, ErrMalformedFmtChunk},
		{"truncated data chunk", truncatedData, ErrTruncatedChunk},
		{"truncated fmt chunk", minimal[:24], ErrTruncatedChunk},
		{"no data chunk", patchRiffSize(noData.Bytes()), ErrMissingDataChunk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := Decode(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.want)
			}

			if file != nil {
				t.Fatalf("expected no model on failure, got %+v", file)
			}
		})
	}
}

func makeWavMissingFmt(t *testing.T) []byte {
	t.Helper()

	var b bytes.Buffer
	writeTestHeader(t, &b)
	writeTestChunk(t, &b, "data", []byte{1, 0})

	return patchRiffSize(b.Bytes())
}

func TestDecodeTooManyUnknownChunks(t *testing.T) {
	var b bytes.Buffer
	writeTestHeader(t, &b)
	writeTestChunk(t, &b, "fmt ", makeFmtPayload(t, nil))

	for i := 0; i < DefaultMaxUnknownChunks+1; i++ {
		writeTestChunk(t, &b, "JUNK", []byte{0, 0})
	}

	writeTestChunk(t, &b, "data", []byte{1, 0})

	_, err := Decode(patchRiffSize(b.Bytes()))
	if !errors.Is(err, ErrTooManyUnknownChunks) {
		t.Fatalf("Decode() error = %v, want %v", err, ErrTooManyUnknownChunks)
	}
}

func TestDecodeConfigurableUnknownChunkLimit(t *testing.T) {
	input := makeWavWithUnknownChunks(t)

	dec := NewDecoder(input)
	dec.MaxUnknownChunks = 1

	_, err := dec.Decode()
	if !errors.Is(err, ErrTooManyUnknownChunks) {
		t.Fatalf("Decode() error = %v, want %v", err, ErrTooManyUnknownChunks)
	}

	dec = NewDecoder(input)
	dec.MaxUnknownChunks = 2

	if _, err := dec.Decode(); err != nil {
		t.Fatalf("decode with limit 2: %v", err)
	}
}

func TestDecodeOddSizedChunkConsumesNoPadding(t *testing.T) {
	var b bytes.Buffer
	writeTestHeader(t, &b)
	writeTestChunk(t, &b, "fmt ", makeFmtPayload(t, nil))
	// 3-byte chunk, no pad byte: the next chunk header starts immediately
	writeTestChunk(t, &b, "odd ", []byte{0xAA, 0xBB, 0xCC})
	writeTestChunk(t, &b, "data", []byte{1, 0})

	file, err := Decode(patchRiffSize(b.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(file.UnknownChunks) != 1 || file.UnknownChunks[0].Size != 3 {
		t.Fatalf("unexpected unknown chunks: %+v", file.UnknownChunks)
	}

	if !bytes.Equal(file.Data.Data, []byte{1, 0}) {
		t.Fatalf("data payload = %v, want [1 0]", file.Data.Data)
	}
}
