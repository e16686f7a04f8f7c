// Package wave decodes RIFF/WAVE files held in memory.
//
// Decode walks the chunk tree of a complete file and returns the PCM samples
// split per channel, along with the format fields of the fmt chunk:
//
//	data, _ := os.ReadFile("kick.wav")
//	a, err := wave.Decode(data)
//
// Only linear PCM, mono or stereo, with up to 16 bits per sample is
// supported. Samples of 8-bit files are unsigned, 16-bit samples are signed.
//
// Following the RIFF rules, unknown chunks are skipped wherever they appear,
// including before the fmt chunk. The audio data may be stored either in a
// single data chunk or in a LIST chunk of type wavl holding data and slnt
// chunks. The fact, cue, plst and adtl chunks are recognised but not
// interpreted; every skipped chunk is listed in Audio.Chunks.
//
// Decoding failures wrap one of the Err* values and can be tested with
// errors.Is.
package wave
