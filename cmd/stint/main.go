package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/stint/internal/cli"
	"github.com/alexanderramin/stint/internal/cli/formatter"
	"github.com/alexanderramin/stint/internal/clock"
	"github.com/alexanderramin/stint/internal/service"
	"github.com/alexanderramin/stint/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Keep piped output free of escape sequences.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColors()
	}

	st := store.NewJSONFileStore(store.DefaultFilename)
	clk := clock.System()

	app := &cli.App{
		Timer:   service.NewTimerService(st, clk),
		Summary: service.NewSummaryService(st),
	}

	return cli.NewRootCmd(app).Execute()
}
