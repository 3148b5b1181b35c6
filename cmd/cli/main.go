package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/defcalc/internal/app"
	"github.com/vk/defcalc/internal/cli"
	"github.com/vk/defcalc/internal/script"
)

// main is the entrypoint for the defcalc application.
func main() {
	// Use a minimal logger until the per-invocation one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		exitErr := cli.ExitErrorFrom(err)
		fmt.Fprintln(os.Stderr, exitErr.Message)
		os.Exit(exitErr.Code)
	}
	os.Exit(cli.ExitSuccess)
}

// run encapsulates the main application logic for easier testing and error
// handling. A panic anywhere below is recovered here so the process always
// exits through the exit-code contract.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("calculator panicked: %v", r)
		}
	}()

	// Instantiate the concrete HCL loader to pass to the app.
	loader := script.NewHCLLoader()
	calcApp := app.NewApp(outW, errW, appConfig, loader)

	return calcApp.Run(context.Background(), appConfig)
}
