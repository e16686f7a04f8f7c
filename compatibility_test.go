package wave

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"testing"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// encodeWithGoAudio writes data through the go-audio encoder and returns the
// resulting file.
func encodeWithGoAudio(t *testing.T, numChans, bitDepth int, data []int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.wav")

	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	enc := gowav.NewEncoder(out, 22050, bitDepth, numChans, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: 22050},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}

	if err := out.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	input, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	return input
}

func TestCompatibility_GoAudioWav(t *testing.T) {
	testCases := []struct {
		numChans int
		bitDepth int
		data     []int
	}{
		{1, 8, []int{0, 1, 127, 128, 200, 255}},
		{2, 8, []int{10, 20, 30, 40, 50, 60, 70, 80}},
		{1, 16, []int{0, -1, 1, 32767, -32768, 1234}},
		{2, 16, []int{-300, 300, 5, -5, 16000, -16000, 0, 0}},
	}

	for _, tc := range testCases {
		name := strconv.Itoa(tc.numChans) + "ch-" + strconv.Itoa(tc.bitDepth) + "bit"
		t.Run(name, func(t *testing.T) {
			input := encodeWithGoAudio(t, tc.numChans, tc.bitDepth, tc.data)

			a, err := Decode(input)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			ref := gowav.NewDecoder(bytes.NewReader(input))

			refBuf, err := ref.FullPCMBuffer()
			if err != nil {
				t.Fatalf("reference decode: %v", err)
			}

			if a.NumChannels() != int(ref.NumChans) || a.BitsPerSample != ref.BitDepth || a.SampleRate != ref.SampleRate {
				t.Fatalf("format mismatch: got %d/%d/%d want %d/%d/%d",
					a.NumChannels(), a.BitsPerSample, a.SampleRate, ref.NumChans, ref.BitDepth, ref.SampleRate)
			}

			got := a.IntBuffer()
			if !reflect.DeepEqual(got.Data, refBuf.Data) {
				t.Fatalf("samples mismatch:\n got %v\nwant %v", got.Data, refBuf.Data)
			}

			if !reflect.DeepEqual(got.Data, tc.data) {
				t.Fatalf("samples don't match the encoded input:\n got %v\nwant %v", got.Data, tc.data)
			}

			if got.NumFrames() != a.NumFrames() {
				t.Fatalf("frame count mismatch: %d vs %d", got.NumFrames(), a.NumFrames())
			}
		})
	}
}
