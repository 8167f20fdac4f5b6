// Package cmd — inspect command.
// Reads a rendered page back into cards and prints them as JSON, which is
// how generated listings are checked against their records.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/extdir/core/extract"
	"github.com/gaurav-prasanna/extdir/core/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <page.html>",
	Short: "Print the extension cards found in rendered HTML as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		cards, err := extract.New().Extract(string(data))
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}
		logger.Debug("cards extracted", "file", args[0], "count", len(cards))

		sum, err := extract.Summarize(string(data))
		if err != nil {
			return err
		}
		if sum.Total != len(cards) {
			logger.Warn("some entries could not be read", "entries", sum.Total, "cards", len(cards))
		}

		out, err := render.MarshalCards(render.ListingJSON{}, cards)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
