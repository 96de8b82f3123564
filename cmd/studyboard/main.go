package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/studyboard/internal/cli"
	"github.com/alexanderramin/studyboard/internal/config"
	"github.com/alexanderramin/studyboard/internal/schedule"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Board: schedule.LoadBoard(),
		Viper: config.NewViper(),
	}

	// Only take over the terminal when stdin is one.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	defer func() {
		if app.Logger != nil {
			_ = app.Logger.Sync()
		}
	}()

	return cli.NewRootCmd(app).Execute()
}
