package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindgym/internal/challenge"
)

var riddlesCmd = &cobra.Command{
	Use:   "riddles",
	Short: "Inspect riddle banks",
}

var riddlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the riddles in use (built-in, or the one given by --riddles)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := cfg.bank()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-4s  %-60s  %s\n", "#", "Question", "Answer")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		for i, r := range bank.Riddles() {
			fmt.Fprintf(out, "%-4d  %-60s  %s\n", i+1, truncate(r.Question, 60), r.Answer)
		}

		fmt.Fprintf(out, "\n%d riddles\n", bank.Len())
		return nil
	},
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-3]) + "..."
}

var riddlesValidateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check riddle bank files without starting the game",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		var failed int
		for _, path := range args {
			bank, err := challenge.LoadBank(path)
			if err != nil {
				failed++
				fmt.Fprintf(out, "FAIL  %v\n", err)
				continue
			}
			fmt.Fprintf(out, "ok    %s (%d riddles)\n", path, bank.Len())
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d banks invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	riddlesCmd.AddCommand(riddlesListCmd)
	riddlesCmd.AddCommand(riddlesValidateCmd)
}

