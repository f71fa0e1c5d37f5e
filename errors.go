package dwav

import "errors"

var (
	// ErrMalformedHeader is returned when the first 12 bytes of the input are
	// not a "RIFF" <size> "WAVE" header.
	ErrMalformedHeader = errors.New("malformed RIFF/WAVE header")
	// ErrMalformedFmtChunk is returned when the chunk following the RIFF
	// header is not "fmt " or declares less than the canonical 16 bytes.
	ErrMalformedFmtChunk = errors.New("malformed fmt chunk")
	// ErrTruncatedChunk is returned when a declared chunk size would read
	// past the end of the input buffer.
	ErrTruncatedChunk = errors.New("chunk size exceeds remaining bytes")
	// ErrTooManyUnknownChunks is returned when the number of non-core chunks
	// before data exceeds the decoder's configured maximum.
	ErrTooManyUnknownChunks = errors.New("too many unknown chunks")
	// ErrMissingDataChunk is returned when the end of the buffer is reached
	// without encountering a data chunk.
	ErrMissingDataChunk = errors.New("data chunk not found")
	// ErrInvalidSampleRate is returned by sample-rate edits for rates <= 0.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	// ErrInvalidBlockAlign is returned by frame reversal when the block
	// alignment is zero or does not evenly divide the data payload.
	ErrInvalidBlockAlign = errors.New("invalid block align")
)

var (
	errNilFile              = errors.New("nil or incomplete wav file")
	errNilWriter            = errors.New("can't write to a nil writer")
	errUnhandledByteDepth   = errors.New("unhandled byte depth")
	errUnsupportedWavFormat = errors.New("unsupported wav format")
)
