package main

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [files...]",
	Short: "Show which files still need type assertions",
	Long:  `Inspect every target file and report how many API calls are still missing the type assertion. Nothing is written.`,
	RunE:  showStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	ctx, err := newRunContext(args)
	if err != nil {
		return err
	}

	ctx.ShowStatus()
	return nil
}
