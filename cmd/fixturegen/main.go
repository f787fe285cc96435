// Command fixturegen writes the JSON schemas of the fixture module.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/tailbits/fixture/internal/config"
	"github.com/tailbits/fixture/internal/generate"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "fixturegen:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("fixturegen", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	envPath := fs.String("env", ".env", "path to a .env file")
	outDir := fs.String("out", "", "output directory")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	lint := fs.Bool("lint", false, "lint the generated document")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		return err
	}

	// flags win over every other source, but only when given
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutDir = *outDir
		case "log-level":
			cfg.LogLevel = *logLevel
		case "lint":
			cfg.Lint = *lint
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()

	written, err := generate.New(cfg, log).Run()
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		return err
	}

	for _, path := range written {
		fmt.Println(path) // nolint:forbidigo
	}

	return nil
}
