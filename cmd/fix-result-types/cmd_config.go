package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fix-result-types/internal/config"
	"github.com/zoro11031/fix-result-types/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the configuration file",
	Long: `Manage the optional configuration file.

Keys:
  TARGET_FILES    - Comma-separated list of files to patch
  TYPE_ASSERTION  - Text inserted after each matched call
  BACKUP          - true to keep a timestamped copy before writing`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  showConfig,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfigFile()
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		ui.New().Infof("%s saved to %s", args[0], cfg.FilePath())
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfigFile()
		if err := cfg.Delete(args[0]); err != nil {
			return fmt.Errorf("failed to remove %s: %w", args[0], err)
		}
		ui.New().Infof("%s removed from %s", args[0], cfg.FilePath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfigFile() *config.Config {
	path := configPath
	if path == "" {
		path = filepath.Join(baseDir, config.DefaultFileName)
	}
	return config.New(path)
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg := loadConfigFile()
	if err := cfg.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := ui.New()
	out.Header("Configuration")

	if _, err := os.Stat(cfg.FilePath()); err == nil {
		out.Infof("Configuration file: %s", cfg.FilePath())
	} else {
		out.Infof("Configuration file: %s (not present, using defaults)", cfg.FilePath())
	}
	out.Print("")

	stored := cfg.GetAll()
	keys := make([]string, 0, len(stored))
	for key := range stored {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		out.Printf("%s=%s", key, stored[key])
	}
	if len(keys) > 0 {
		out.Print("")
	}

	out.Bold("Effective settings:")
	out.Printf("  type assertion: %q", cfg.TypeAssertion())
	out.Printf("  backup:         %t", cfg.Backup())
	out.Printf("  targets:")
	for _, target := range cfg.TargetFiles() {
		out.Printf("    %s", target)
	}

	return nil
}
