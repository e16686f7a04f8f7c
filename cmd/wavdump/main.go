// This tool decodes a wav file and prints its format, the chunks the decoder
// skipped and the first frames of every channel.
//
// Defaults can be set with the WAVDUMP_SAMPLES and WAVDUMP_STRICT environment
// variables, either directly or through a .env file (WAVDUMP_ENV overrides
// its path).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"codeberg.org/go-mmap/mmap"
	"github.com/cwbudde/wave"
	"github.com/joho/godotenv"
)

const missingPathMessage = "You must pass the path of the file to decode"

var errMissingPath = errors.New("missing path argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

type config struct {
	samples int
	strict  bool
}

// loadConfig reads the environment defaults and applies the command line
// flags on top of them.
func loadConfig(args []string, out io.Writer) (*config, []string, error) {
	envFile := os.Getenv("WAVDUMP_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || os.Getenv("WAVDUMP_ENV") != "" {
			return nil, nil, fmt.Errorf("load %v: %w", envFile, err)
		}
	}

	cfg := &config{samples: 8}

	if v := os.Getenv("WAVDUMP_SAMPLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid WAVDUMP_SAMPLES %q: %w", v, err)
		}

		cfg.samples = n
	}

	if v := os.Getenv("WAVDUMP_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid WAVDUMP_STRICT %q: %w", v, err)
		}

		cfg.strict = strict
	}

	flags := flag.NewFlagSet("wavdump", flag.ContinueOnError)
	flags.SetOutput(out)
	flags.IntVar(&cfg.samples, "n", cfg.samples, "number of frames to print per channel")
	flags.BoolVar(&cfg.strict, "strict", cfg.strict, "reject files whose RIFF size exceeds the file size")

	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	if cfg.samples < 0 {
		return nil, nil, fmt.Errorf("invalid sample count %d", cfg.samples)
	}

	return cfg, flags.Args(), nil
}

func run(args []string, out io.Writer) error {
	cfg, paths, err := loadConfig(args, out)
	if err != nil {
		return err
	}

	if len(paths) < 1 {
		return errMissingPath
	}

	data, err := readFile(paths[0])
	if err != nil {
		return err
	}

	var opts []wave.Option
	if cfg.strict {
		opts = append(opts, wave.WithStrictRIFFSize())
	}

	a, err := wave.Decode(data, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", paths[0], err)
	}

	fmt.Fprintf(out, "File: %s\n", paths[0])
	fmt.Fprintf(out, "Format: %s\n", a.WaveFormat)
	fmt.Fprintf(out, "Channels: %d\n", a.NumChannels())
	fmt.Fprintf(out, "SampleRate: %d\n", a.SampleRate)
	fmt.Fprintf(out, "BitsPerSample: %d\n", a.BitsPerSample)
	fmt.Fprintf(out, "ByteRate: %d\n", a.ByteRate)
	fmt.Fprintf(out, "BlockAlign: %d\n", a.BlockAlign)
	fmt.Fprintf(out, "Frames: %d\n", a.NumFrames())
	fmt.Fprintf(out, "Duration: %s\n", a.Duration())

	if len(a.Chunks) == 0 {
		fmt.Fprintln(out, "No skipped chunks")
	} else {
		fmt.Fprintln(out, "Skipped chunks:")

		for _, c := range a.Chunks {
			fmt.Fprintf(out, "\t%s\n", c)
		}
	}

	for i, ch := range a.Channels {
		n := min(cfg.samples, len(ch))

		values := make([]int, n)
		for j := 0; j < n; j++ {
			values[j] = ch[j].Int()
		}

		fmt.Fprintf(out, "Channel %d: %v\n", i, values)
	}

	return nil
}

// readFile maps the file read-only and copies it into memory.
func readFile(path string) ([]byte, error) {
	f, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := make([]byte, f.Len())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}
