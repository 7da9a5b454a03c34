// scarab-derive generates engine capability methods for the annotated types
// of a package. It is meant to be run by go generate:
//
//	//go:generate go run scarab/cmd/scarab-derive
//
// Usage:
//
//	scarab-derive [-output scarab_derive.go] [-engine path] [-tags a,b] [-format text|json] [-verbose] [packages]
//
// Every flag can also be set from the environment (SCARAB_DERIVE_OUTPUT,
// SCARAB_DERIVE_ENGINE, SCARAB_DERIVE_TAGS, SCARAB_DERIVE_FORMAT,
// SCARAB_DERIVE_VERBOSE). Flags win over the environment.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-json"

	"scarab/internal/derive"
)

// Config holds scarab-derive configuration.
type Config struct {
	Output     string   `env:"SCARAB_DERIVE_OUTPUT"  envDefault:"scarab_derive.go"`
	EnginePath string   `env:"SCARAB_DERIVE_ENGINE"  envDefault:"scarab/internal/engine"`
	Tags       []string `env:"SCARAB_DERIVE_TAGS"    envSeparator:","`
	Format     string   `env:"SCARAB_DERIVE_FORMAT"  envDefault:"text"`
	Verbose    bool     `env:"SCARAB_DERIVE_VERBOSE"`
	Patterns   []string
}

// ParseConfig reads the environment, then applies flags from args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Output, "output", cfg.Output, "generated file name in each package directory")
	fs.StringVar(&cfg.EnginePath, "engine", cfg.EnginePath, "import path of the engine package")
	fs.Func("tags", "comma-separated build tags", func(v string) error {
		cfg.Tags = splitList(v)
		return nil
	})
	fs.StringVar(&cfg.Format, "format", cfg.Format, "diagnostic format: text or json")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch cfg.Format {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("unknown format %q", cfg.Format)
	}
	cfg.Patterns = fs.Args()
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = []string{"."}
	}
	return cfg, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one generator invocation and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("scarab-derive", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "scarab-derive: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	res, err := derive.Run(ctx, derive.Options{
		Patterns:   cfg.Patterns,
		Output:     cfg.Output,
		EnginePath: cfg.EnginePath,
		Tags:       cfg.Tags,
		Logger:     logger,
	})
	if res != nil {
		if werr := writeDiagnostics(cfg.Format, res.Diagnostics, stdout, stderr); werr != nil {
			logger.Error("write diagnostics", "error", werr)
			return 1
		}
	}
	if err != nil {
		logger.Error("generation failed", "error", err)
		return 1
	}
	if len(res.Diagnostics) > 0 {
		return 1
	}
	return 0
}

// diagnosticRecord is one line of -format json output.
type diagnosticRecord struct {
	*derive.Diagnostic
	Location string `json:"location,omitempty"`
}

// writeDiagnostics prints text diagnostics to stderr and JSON lines to
// stdout.
func writeDiagnostics(format string, diags []*derive.Diagnostic, stdout, stderr io.Writer) error {
	if format == "json" {
		enc := json.NewEncoder(stdout)
		for _, d := range diags {
			if err := enc.Encode(diagnosticRecord{Diagnostic: d, Location: d.Location()}); err != nil {
				return fmt.Errorf("encode diagnostic: %w", err)
			}
		}
		return nil
	}
	for _, d := range diags {
		if _, err := fmt.Fprintln(stderr, d.Error()); err != nil {
			return err
		}
	}
	return nil
}
