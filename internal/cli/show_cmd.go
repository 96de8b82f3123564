package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// defaultShowWidth fits all five day columns.
const defaultShowWidth = 160

func newShowCmd(app *App) *cobra.Command {
	var width int
	var noNotes bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the weekly board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.configure(true); err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = outputWidth(cmd.OutOrStdout(), width)
			}
			return printBoard(cmd.OutOrStdout(), app, width, !noNotes)
		},
	}

	cmd.Flags().IntVar(&width, "width", defaultShowWidth, "Output width in columns (default: terminal width)")
	cmd.Flags().BoolVar(&noNotes, "no-notes", false, "Omit the tips and checklist")

	return cmd
}

// outputWidth returns the terminal width when w is a terminal, else fallback.
func outputWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallback
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return fallback
	}
	return cols
}
