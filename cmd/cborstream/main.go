// Command cborstream reads a JSON document and re-encodes it as CBOR,
// exercising this module's streaming encoder end to end.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/synadia-labs/cbor.go/cbor"
)

// CLI defines the cborstream command-line interface.
type CLI struct {
	Input  string `short:"i" help:"Input JSON file, or '-' for stdin" default:"-"`
	Output string `short:"o" help:"Output CBOR file, or '-' for stdout" default:"-"`
	Config string `short:"c" help:"Optional .jsonc file of default feature toggles"`

	SelfDescribe   bool `help:"Emit the tag-55799 self-describe marker at stream start"`
	Stringref      bool `help:"Enable tag-25 backreferences for repeated strings"`
	MinimalDoubles bool `help:"Narrow float64 values to float32 when that round-trips exactly"`
	LenientUTF8    bool `help:"Replace invalid UTF-8 with U+FFFD instead of failing"`
	FullWidthInts  bool `help:"Disable minimal-width integer encoding"`
	MaxDepth       int  `help:"Maximum container nesting depth (0 disables the limit)" default:"1000"`

	Verbose bool `short:"v" help:"Enable debug-level diagnostics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cborstream"),
		kong.Description("Re-encode a JSON document as CBOR."),
	)

	log := newLogger(cli.Verbose)
	if err := run(&cli, log); err != nil {
		log.Error().Err(err).Msg("cborstream failed")
		ctx.FatalIfErrorf(err)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	var w io.Writer = os.Stderr
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func run(cli *CLI, log zerolog.Logger) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	in, closeIn, err := openInput(cli.Input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer closeIn()

	out, closeOut, err := openOutput(cli.Output)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer closeOut()

	enc := cbor.NewEncoder(out,
		cbor.WithSelfDescribeTag(cfg.SelfDescribeTag),
		cbor.WithStringref(cfg.Stringref),
		cbor.WithMinimalDoubles(cfg.MinimalDoubles),
		cbor.WithLenientUTF8(cfg.LenientUTF8),
		cbor.WithFullWidthInts(cfg.FullWidthInts),
		cbor.WithMaxDepth(cfg.MaxDepth),
	)

	if err := transcodeJSON(in, enc); err != nil {
		log.Error().Err(err).Int64("bytesWritten", enc.BytesWritten()).Msg("encoding failed")
		_ = enc.Close()
		return fmt.Errorf("transcode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}

	log.Info().
		Int64("bytesWritten", enc.BytesWritten()).
		Bool("stringref", cfg.Stringref).
		Bool("selfDescribeTag", cfg.SelfDescribeTag).
		Msg("document encoded")
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if strings.TrimSpace(path) == "-" || path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if strings.TrimSpace(path) == "-" || path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
