package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mindgym/internal/app"
	"github.com/abhisek/mindgym/internal/session"
)

var skipSplash bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := cfg.bank()
		if err != nil {
			return err
		}
		gen := cfg.generatorFactory(bank)()

		return app.Run(app.Options{
			Controller: session.NewController(gen),
			SkipSplash: skipSplash,
		})
	},
}

func init() {
	playCmd.Flags().BoolVar(&skipSplash, "no-splash", false, "skip the welcome animation")
}
