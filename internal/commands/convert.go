package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/cleared-dev/koinlyconv/internal/config"
	"github.com/cleared-dev/koinlyconv/internal/convert"
	"github.com/cleared-dev/koinlyconv/internal/koinly"
	"github.com/cleared-dev/koinlyconv/internal/logger"
	"github.com/cleared-dev/koinlyconv/internal/summary"
)

type options struct {
	configPath string
	summary    bool
	verbose    bool
}

func runConvert(stdout, stderr io.Writer, inputPath string, opts options) error {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log := logger.New(stderr, opts.verbose || cfg.Log.Verbose)

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	out := koinly.NewWriter(stdout)
	var sink convert.RowWriter = out

	var tally *summary.Tally
	if opts.summary {
		tally = summary.NewTally()
		sink = convert.Tee(out, tally)
	}

	stats, err := convert.Run(f, sink, cfg.ConvertFilter())
	if err != nil {
		// Rows converted before the failure stay on stdout.
		if ferr := out.Flush(); ferr != nil {
			log.Warn().Err(ferr).Msg("flushing partial output")
		}
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	log.Debug().
		Str("input", inputPath).
		Stringer("kind", stats.Kind).
		Int("rows", stats.Rows).
		Int("written", stats.Written).
		Int("skipped_coin", stats.SkippedCoin).
		Int("skipped_transfer", stats.SkippedTransfer).
		Msg("conversion finished")

	if tally != nil {
		tally.Render(stderr)
	}
	return nil
}
