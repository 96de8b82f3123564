package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/studyboard/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board as a web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.configure(true); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := web.NewServer(app.Board, app.Config, app.Logger)
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (host:port)")
	cmd.Flags().StringSlice("cors-origin", nil, "Allowed CORS origin (repeatable)")
	app.bindFlag("addr", cmd.Flags(), "addr")
	app.bindFlag("cors_origins", cmd.Flags(), "cors-origin")

	return cmd
}
