package dwav

import "fmt"

func ExampleEditRequest_Apply() {
	file := &File{
		FmtChunk: &FmtChunk{
			FormatTag:      FormatPCM,
			NumChannels:    1,
			SampleRate:     8000,
			AvgBytesPerSec: 16000,
			BlockAlign:     2,
			BitsPerSample:  16,
		},
		Data: &DataChunk{Size: 4, Data: []byte{1, 0, 2, 0}},
	}

	req := EditRequest{SampleRate: 44100, Reverse: true}
	if err := req.Apply(file); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(file.FmtChunk.SampleRate, file.FmtChunk.AvgBytesPerSec)
	fmt.Println(file.Data.Data)
	// Output:
	// 44100 88200
	// [2 0 1 0]
}

func ExampleFile_ReverseFrames() {
	file := &File{
		FmtChunk: &FmtChunk{BlockAlign: 2},
		Data:     &DataChunk{Size: 6, Data: []byte{1, 0, 2, 0, 3, 0}},
	}

	if err := file.ReverseFrames(); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(file.Data.Data)
	// Output:
	// [3 0 2 0 1 0]
}
