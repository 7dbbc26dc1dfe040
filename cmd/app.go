// Package cmd implements the CLI application to manage the farm inventory.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mangoclub/mango"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addProductCmd{}, "catalog")
	c.Register(&addContactCmd{}, "catalog")

	c.Register(&receiveCmd{}, "movements")
	c.Register(&shipCmd{}, "movements")
	c.Register(&importCmd{}, "movements")

	c.Register(&productsCmd{}, "reports")
	c.Register(&unitsCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&flowCmd{}, "reports")
	c.Register(&contactsCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var farmFile = flag.String("farm-file", mango.DefaultFarmFile, "Path to the farm inventory snapshot (JSON format)")
var verbose = flag.Bool("v", false, "Enable debug logging")

// logger writes human-oriented diagnostics to stderr, keeping stdout clean
// for the reports.
func logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}

// OpenLedger loads the farm ledger from the configured snapshot file,
// creating a fresh one on first use.
func OpenLedger() (*mango.Ledger, error) {
	log := logger()
	store := mango.NewFileStore(*farmFile)
	if _, err := os.Stat(*farmFile); os.IsNotExist(err) {
		log.Debug().Str("file", *farmFile).Msg("no snapshot found, starting a fresh farm")
	}
	l, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("could not open farm ledger: %w", err)
	}
	log.Debug().
		Str("file", *farmFile).
		Int("products", l.Products().Len()).
		Int("movements", l.History().Len()).
		Msg("ledger loaded")
	return l, nil
}

// reportMutation turns a mutation error into an exit status. Durability
// warnings are logged but do not fail the command: the movement itself
// committed.
func reportMutation(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	log := logger()
	if errors.Is(err, mango.ErrPersistence) {
		log.Warn().Err(err).Msg("movement recorded, but saving the snapshot failed")
		return subcommands.ExitSuccess
	}
	if mango.IsValidation(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// printMarkdown renders a markdown report for the terminal, falling back
// to the raw markdown when styling is unavailable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
