// Package cli wires configuration, output, logging and the file system into
// a patcher run. It is the layer between cobra commands and internal/patcher.
package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/zoro11031/fix-result-types/internal/common"
	"github.com/zoro11031/fix-result-types/internal/config"
	"github.com/zoro11031/fix-result-types/internal/patcher"
	"github.com/zoro11031/fix-result-types/internal/system"
	"github.com/zoro11031/fix-result-types/internal/ui"
	"go.uber.org/zap"
)

// Options carries command-line settings into a RunContext
type Options struct {
	// BaseDir is the web app root the target paths are relative to
	BaseDir string
	// ConfigPath overrides <BaseDir>/.fix-result-types.conf
	ConfigPath  string
	DryRun      bool
	Interactive bool
	Backup      bool
	// Targets overrides the configured target list when non-empty
	Targets []string
	Logger  *zap.Logger
	// Output receives status lines; nil means stdout
	Output io.Writer
}

// RunContext holds all dependencies needed for a patch run
type RunContext struct {
	Config  *config.Config
	UI      *ui.UI
	Logger  *zap.Logger
	Targets []string
	Patcher *patcher.Patcher
	Options Options
}

// NewRunContext creates a RunContext with all dependencies initialized
func NewRunContext(opts Options) (*RunContext, error) {
	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}
	if err := common.ValidateNotEmpty(opts.BaseDir); err != nil {
		return nil, fmt.Errorf("invalid base directory: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = filepath.Join(opts.BaseDir, config.DefaultFileName)
	}
	cfg := config.New(configPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	targets := opts.Targets
	if len(targets) == 0 {
		targets = cfg.TargetFiles()
	}
	for _, target := range targets {
		if err := common.ValidateTargetPath(target); err != nil {
			return nil, err
		}
	}

	uiInstance := ui.New()
	if opts.Output != nil {
		uiInstance = ui.NewWithWriter(opts.Output)
	}
	uiInstance.SetNonInteractive(!opts.Interactive)

	patchOpts := patcher.Options{
		BaseDir:       opts.BaseDir,
		TypeAssertion: cfg.TypeAssertion(),
		DryRun:        opts.DryRun,
		Backup:        opts.Backup || cfg.Backup(),
	}
	if opts.Interactive {
		patchOpts.Confirm = uiInstance.ConfirmWrite
	}

	opts.Logger.Debug("run context ready",
		zap.String("base_dir", opts.BaseDir),
		zap.String("config", configPath),
		zap.Int("targets", len(targets)),
		zap.Bool("dry_run", patchOpts.DryRun),
		zap.Bool("backup", patchOpts.Backup))

	return &RunContext{
		Config:  cfg,
		UI:      uiInstance,
		Logger:  opts.Logger,
		Targets: targets,
		Patcher: patcher.New(system.NewFileSystem(), uiInstance, opts.Logger, patchOpts),
		Options: opts,
	}, nil
}

// Run patches every target and prints one status line per file
func (ctx *RunContext) Run() patcher.Summary {
	return ctx.Patcher.Run(ctx.Targets)
}

// ShowStatus prints how many call expressions each target still needs patched
func (ctx *RunContext) ShowStatus() {
	ctx.UI.Header("Result Type Assertion Status")
	ctx.UI.Infof("Base directory: %s", ctx.Options.BaseDir)
	ctx.UI.Print("")

	pending := 0
	for i, target := range ctx.Targets {
		n, err := ctx.Patcher.Inspect(target)
		switch {
		case patcher.IsNotFound(err):
			ctx.UI.Printf("[%d] ! %s (not found)", i, target)
		case err != nil:
			ctx.UI.Printf("[%d] X %s (%v)", i, target, err)
		case n > 0:
			ctx.UI.Printf("[%d] * %s (%d pending)", i, target, n)
			pending++
		default:
			ctx.UI.Printf("[%d] - %s (up to date)", i, target)
		}
	}

	ctx.UI.Print("")
	ctx.UI.Separator()
	ctx.UI.Infof("Pending: %d/%d files need changes", pending, len(ctx.Targets))
	ctx.UI.Separator()
}
