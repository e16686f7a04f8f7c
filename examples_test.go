package wave

import (
	"errors"
	"fmt"
	"log"
)

func ExampleDecode() {
	input := pcmWav(2, 8000, 8, []byte{1, 2, 3, 4})

	a, err := Decode(input)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d channels, %d frames at %d Hz\n", a.NumChannels(), a.NumFrames(), a.SampleRate)
	fmt.Println("left:", channelInts(a.Channels[0]))
	fmt.Println("right:", channelInts(a.Channels[1]))
	// Output:
	// 2 channels, 2 frames at 8000 Hz
	// left: [1 3]
	// right: [2 4]
}

func ExampleDecode_errors() {
	input := riffBytes(chunkBytes("fmt ", fmtPayload(2, 1, 8000, 8000, 1, 8)), chunkBytes("data", []byte{1}))

	_, err := Decode(input)
	fmt.Println(errors.Is(err, ErrUnsupportedFormat))
	// Output: true
}

func ExampleAudio_RawChunks() {
	input := riffBytes(
		chunkBytes("JUNK", []byte{0, 0, 0}),
		pcmFmtChunk(1, 8000, 8),
		chunkBytes("data", []byte{1, 2}),
	)

	a, err := Decode(input)
	if err != nil {
		log.Fatal(err)
	}

	for _, c := range a.RawChunks() {
		fmt.Println(c)
	}
	// Output: "JUNK" 3 bytes @12
}
