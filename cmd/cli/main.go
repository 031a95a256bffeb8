package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/csvexplore/internal/app"
	"github.com/specialistvlad/csvexplore/internal/cli"
	"github.com/specialistvlad/csvexplore/internal/hcl"
)

// main is the entrypoint for the csvexplore application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Reports go to outW; usage text, logs and nothing else go to errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW, hcl.NewLoader())
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	explorer := app.NewApp(outW, errW, appConfig)
	defer explorer.Close()

	if err := explorer.Run(context.Background()); err != nil {
		return cli.Failure(err)
	}
	return nil
}
