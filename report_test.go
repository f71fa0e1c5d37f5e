package dwav

import (
	"fmt"
	"strings"
	"testing"
)

func TestDescribeMinimalFile(t *testing.T) {
	file, err := Decode(makeMinimalWav(t))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	out := file.Describe()
	checks := []string{
		"RIFF ELEMENTS",
		"Format: WAVE",
		"FORMAT ELEMENTS",
		"Audio Format: 1",
		"Number of Channels: 1",
		"Sample Rate: 8000",
		"Byte Rate: 16000",
		"Block Align: 2",
		"Bits Per Sample: 16",
		"Extra Parameters: No",
		"DATA ELEMENTS",
		"Subchunk Size: 8",
		"Extra Subchunks Found: 0",
	}

	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Fatalf("expected report to contain %q\nfull report:\n%s", c, out)
		}
	}
}

func TestDescribeFlagsExtraParamsWithoutDumpingBytes(t *testing.T) {
	file, err := Decode(makeWavWithExtraParams(t, []byte{0xAB, 0xCD}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	out := file.Describe()
	if !strings.Contains(out, "Extra Parameters: Yes (2 bytes)") {
		t.Fatalf("expected extra params flag in report:\n%s", out)
	}

	if strings.Contains(out, "0xAB") || strings.Contains(out, "171") {
		t.Fatalf("report should not dump extra param bytes:\n%s", out)
	}
}

func TestDescribeListsUnknownChunksInOrder(t *testing.T) {
	file, err := Decode(makeWavWithUnknownChunks(t))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	out := file.Describe()
	if !strings.Contains(out, "Extra Subchunks Found: 2") {
		t.Fatalf("expected 2 extra subchunks in report:\n%s", out)
	}

	listIdx := strings.Index(out, "LIST of Size 6")
	junkIdx := strings.Index(out, "JUNK of Size 4")

	if listIdx < 0 || junkIdx < 0 {
		t.Fatalf("missing unknown chunk lines:\n%s", out)
	}

	if listIdx > junkIdx {
		t.Fatalf("unknown chunks reported out of order:\n%s", out)
	}
}

func TestDescribeReportsEveryUnknownChunk(t *testing.T) {
	file := &File{
		FmtChunk: &FmtChunk{FormatTag: FormatPCM, NumChannels: 1, BlockAlign: 2, BitsPerSample: 16},
		Data:     &DataChunk{},
	}

	for i := 0; i < DefaultMaxUnknownChunks; i++ {
		file.UnknownChunks = append(file.UnknownChunks, RawChunk{
			ID:    [4]byte{'c', 'k', byte('0' + i), ' '},
			Size:  uint32(i),
			Order: i,
		})
	}

	out := file.Describe()
	if !strings.Contains(out, fmt.Sprintf("Extra Subchunks Found: %d", DefaultMaxUnknownChunks)) {
		t.Fatalf("wrong chunk count in report:\n%s", out)
	}

	for i, chunk := range file.UnknownChunks {
		line := fmt.Sprintf("%s of Size %d", chunkIDString(chunk.ID), i)
		if !strings.Contains(out, line) {
			t.Fatalf("missing line %q in report:\n%s", line, out)
		}
	}
}

func TestDescribeNilFile(t *testing.T) {
	var file *File
	if out := file.Describe(); out != "" {
		t.Fatalf("nil file report = %q, want empty", out)
	}
}
