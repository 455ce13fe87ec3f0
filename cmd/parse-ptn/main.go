package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/icco/gutil/logging"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/icco/takrules"
	"github.com/icco/takrules/display"
	"github.com/icco/takrules/playtak"
	"github.com/icco/takrules/ptnfile"
	"github.com/icco/takrules/verify"
)

type options struct {
	Filename    flags.Filename `short:"f" long:"filename" description:"PTN file to replay"`
	Driver      string         `long:"driver" description:"Games database driver" choice:"sqlite" choice:"postgres" default:"sqlite"`
	DSN         string         `long:"dsn" env:"DATABASE_URL" description:"Games database to read playtak games from"`
	IDs         []int64        `long:"id" description:"Game id to replay from the database (repeatable)"`
	Size        int            `long:"size" description:"Replay every database game of this board size"`
	Limit       int            `long:"limit" default:"100" description:"Maximum games to replay with --size"`
	Komi        int            `long:"komi" description:"Komi for games that do not set one"`
	Board       bool           `short:"b" long:"board" description:"Print the final board of each game"`
	MetricsFile string         `long:"metrics-file" description:"Write prometheus counters to this file"`
}

var log = logging.Must(logging.NewLogger(takrules.Service))

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		log.Errorw("replay failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	recs, err := loadRecords(ctx, opts)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	v := &verify.Verifier{
		Rules:   takrules.Rules{Komi: opts.Komi},
		Metrics: verify.NewMetrics(reg),
	}

	var failed int
	for i, rec := range recs {
		if rec.Komi == 0 {
			rec.Komi = opts.Komi
		}

		rep, err := v.Verify(rec)
		if err != nil {
			failed++
			fmt.Fprintf(out, "game %d: %v\n", i, err)
			if rep != nil && opts.Board {
				fmt.Fprintln(out, display.Render(rep.Game))
			}
			continue
		}

		status := "ok"
		if !rep.Match {
			status = "MISMATCH"
			failed++
		}
		fmt.Fprintf(out, "game %d: %d plies, %s (expected %q) %s\n", i, rep.Plies, rep.Outcome, rep.Expected, status)
		if opts.Board {
			fmt.Fprintln(out, display.Render(rep.Game))
		}
	}

	if opts.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d games failed verification", failed, len(recs))
	}
	return nil
}

func loadRecords(ctx context.Context, opts options) ([]*takrules.Record, error) {
	var recs []*takrules.Record

	if opts.Filename != "" {
		f, err := os.Open(string(opts.Filename))
		if err != nil {
			return nil, err
		}
		defer f.Close()

		rec, err := ptnfile.Load(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opts.Filename, err)
		}
		recs = append(recs, rec)
	}

	if len(opts.IDs) > 0 || opts.Size > 0 {
		store, err := playtak.Open(opts.Driver, opts.DSN)
		if err != nil {
			return nil, err
		}

		ids := opts.IDs
		if opts.Size > 0 {
			more, err := store.IDs(ctx, opts.Size, opts.Limit)
			if err != nil {
				return nil, err
			}
			ids = append(ids, more...)
		}

		for _, id := range ids {
			rec, err := store.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			recs = append(recs, rec)
		}
	}

	if len(recs) == 0 {
		return nil, fmt.Errorf("nothing to replay: pass --filename, --id or --size")
	}

	return recs, nil
}
