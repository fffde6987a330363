package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fix-result-types/internal/cli"
)

var (
	// Flags for the patch run
	dryRun      bool
	interactive bool
	backup      bool
)

func init() {
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show the changes as a diff without writing files")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask before writing each file")
	rootCmd.Flags().BoolVar(&backup, "backup", false, "Keep a timestamped copy of each file before writing")
}

func runPatch(cmd *cobra.Command, args []string) error {
	ctx, err := newRunContext(args)
	if err != nil {
		return err
	}

	ctx.Run()
	return nil
}

func newRunContext(targets []string) (*cli.RunContext, error) {
	ctx, err := cli.NewRunContext(cli.Options{
		BaseDir:     baseDir,
		ConfigPath:  configPath,
		DryRun:      dryRun,
		Interactive: interactive,
		Backup:      backup,
		Targets:     targets,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize run context: %w", err)
	}
	return ctx, nil
}
