// Package dwav disassembles RIFF/WAVE containers into their constituent
// chunks and reassembles them.
//
// A Decoder walks the whole in-memory file once and builds a File: the RIFF
// header, the fmt chunk (including any opaque extra format parameters), every
// non-core chunk found between fmt and data (preserved byte for byte, in
// order), and the terminal data chunk. The File supports two in-place edits,
// sample-rate retagging and sample-frame reversal, and an Encoder writes the
// model back out in canonical chunk order.
//
// Unless an edit is requested, a decode/encode round trip reproduces the
// input bytes exactly, with one documented exception: chunk classification
// stops at the data chunk, so bytes trailing the data payload are never
// modeled. Odd-sized chunks are not padded to even boundaries on either side;
// the package intentionally keeps the layout of the files it was built to
// process.
package dwav
