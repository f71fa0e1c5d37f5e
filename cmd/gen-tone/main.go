// gen-tone writes a mono 16-bit PCM sine wave wav file, handy for producing
// test input for the dwav disassembler.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	dwav "github.com/NickyDCFP/dWAV"
)

const (
	sampleRate = 48000
	frameSize  = 2
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-tone", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	log.Printf("generating a %f sec tone at %f hz", *length, *frequency)

	numFrames := int(sampleRate * *length)
	data := make([]byte, numFrames*frameSize)

	for i := 0; i < numFrames; i++ {
		fv := math.Sin(float64(i) / sampleRate * *frequency * 2 * math.Pi)
		binary.LittleEndian.PutUint16(data[i*frameSize:], uint16(int16(fv*math.MaxInt16)))
	}

	file := &dwav.File{
		FmtChunk: &dwav.FmtChunk{
			FormatTag:      dwav.FormatPCM,
			NumChannels:    1,
			SampleRate:     sampleRate,
			AvgBytesPerSec: sampleRate * frameSize,
			BlockAlign:     frameSize,
			BitsPerSample:  16,
		},
		Data: &dwav.DataChunk{
			Size: uint32(len(data)),
			Data: data,
		},
	}

	out, err := dwav.Marshal(file)
	if err != nil {
		return fmt.Errorf("error encoding the tone: %w", err)
	}

	if err := os.WriteFile(*output, out, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", *output, err)
	}

	return nil
}
