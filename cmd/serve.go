package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindgym/internal/store"
	"github.com/abhisek/mindgym/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser game",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	registerServeFlags(serveCmd)
}

// runServe starts the session reaper and the web server and blocks until
// interrupted.
func runServe(cmd *cobra.Command) error {
	wc := cfg.web()
	if err := wc.Validate(); err != nil {
		return err
	}

	logger, err := cfg.logger()
	if err != nil {
		return err
	}

	bank, err := cfg.bank()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := store.New(store.Options{
		IdleTimeout:  cfg.sessionTimeout,
		NewGenerator: cfg.generatorFactory(bank),
		Logger:       logger,
	})
	go st.Run(ctx)

	logger.Info("riddle bank loaded", "riddles", bank.Len())
	return web.New(wc, st, logger).Run(ctx)
}
