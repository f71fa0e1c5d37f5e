// dwav is a command-line wav file disassembler. It prints the human-readable
// portions of a wav file and can retag the sample rate (-hz) or reverse the
// sample frames (-r), writing the result to an output file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	dwav "github.com/NickyDCFP/dWAV"
)

const wavExtension = ".wav"

var (
	errMissingInput    = errors.New("missing input file, pass -i")
	errInvalidFilename = errors.New("filenames must end with '.wav'")
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingInput) || errors.Is(err, errInvalidFilename) {
		fmt.Println(err, "- please consult README for usage")
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("dwav", flag.ContinueOnError)

	input := flagSet.String("i", "", "path of the wav file to disassemble")
	output := flagSet.String("o", "ProductFile.wav", "path of the output file")
	rate := flagSet.Int("hz", 0, "new sample rate to tag the output with")
	reverse := flagSet.Bool("r", false, "reverse the order of the sample frames")
	forceCopy := flagSet.Bool("c", false, "write the output file even without edits")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *input == "" {
		return errMissingInput
	}

	if err := validateFilename(*input); err != nil {
		return err
	}

	if err := validateFilename(*output); err != nil {
		return err
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		return fmt.Errorf("failed to read %s - %w", *input, err)
	}

	fmt.Fprintf(out, "Opening file %s\n", *input)
	fmt.Fprintf(out, "Bytes Read: %d\n", len(data))

	file, err := dwav.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to disassemble %s - %w", *input, err)
	}

	fmt.Fprintf(out, "\n%s", file.Describe())

	req := dwav.EditRequest{
		SampleRate: *rate,
		Reverse:    *reverse,
		ForceCopy:  *forceCopy,
	}

	if err := req.Apply(file); err != nil {
		return fmt.Errorf("failed to apply edits - %w", err)
	}

	if !req.NeedsOutput() {
		return nil
	}

	outBytes, err := dwav.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to reassemble %s - %w", *output, err)
	}

	if err := os.WriteFile(*output, outBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write %s - %w", *output, err)
	}

	fmt.Fprintf(out, "\nWriting to file %s\n", *output)
	fmt.Fprintf(out, "Bytes Written: %d\n", len(outBytes))

	return nil
}

func validateFilename(name string) error {
	if !strings.EqualFold(filepath.Ext(name), wavExtension) {
		return fmt.Errorf("%q - %w", name, errInvalidFilename)
	}

	return nil
}
