package dwav

import "fmt"

// EditRequest is a validated value object describing the edits a caller
// wants applied to a parsed file. It replaces ad hoc argument state: the CLI
// (or any other collaborator) builds one request and hands it to Apply.
//
// The two edits touch disjoint fields, so requesting both is
// order-independent.
type EditRequest struct {
	// SampleRate retags the file when positive. Zero means unchanged;
	// negative rates are rejected.
	SampleRate int
	// Reverse flips the order of the sample frames.
	Reverse bool
	// ForceCopy requests output serialization even without edits.
	ForceCopy bool
}

// NeedsOutput reports whether the request calls for writing an output file.
func (req EditRequest) NeedsOutput() bool {
	return req.ForceCopy || req.SampleRate != 0 || req.Reverse
}

// Apply runs the requested edits against the file. Validation happens up
// front so a failed request leaves the model in its pre-call state.
func (req EditRequest) Apply(f *File) error {
	if f == nil {
		return errNilFile
	}

	if req.SampleRate < 0 {
		return fmt.Errorf("%d - %w", req.SampleRate, ErrInvalidSampleRate)
	}

	if req.Reverse {
		if err := f.ReverseFrames(); err != nil {
			return err
		}
	}

	if req.SampleRate > 0 {
		if err := f.SetSampleRate(req.SampleRate); err != nil {
			return err
		}
	}

	return nil
}
