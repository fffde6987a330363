package patcher

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"unicode/utf8"

	"github.com/zoro11031/fix-result-types/internal/system"
	"go.uber.org/zap"
)

// ErrInvalidUTF8 is returned for target files that are not UTF-8 text.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// Reporter receives one result per processed file and a final completion call.
type Reporter interface {
	Report(result Result)
	Complete()
}

// ConfirmFunc asks whether a pending change to path should be written.
type ConfirmFunc func(path string) (bool, error)

// Options controls how a Patcher rewrites files.
type Options struct {
	// BaseDir is joined with each relative target path. Empty means the working directory.
	BaseDir string
	// TypeAssertion overrides DefaultTypeAssertion when non-empty.
	TypeAssertion string
	DryRun        bool
	Backup        bool
	// Confirm, when set, is consulted before every write.
	Confirm ConfirmFunc
}

// Patcher applies the type assertion rewrite to a list of files.
type Patcher struct {
	fs       system.FileSystemManager
	reporter Reporter
	logger   *zap.Logger
	opts     Options
}

// New creates a Patcher. A nil logger is replaced by a no-op logger.
func New(fsm system.FileSystemManager, reporter Reporter, logger *zap.Logger, opts Options) *Patcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.TypeAssertion == "" {
		opts.TypeAssertion = DefaultTypeAssertion
	}
	return &Patcher{
		fs:       fsm,
		reporter: reporter,
		logger:   logger,
		opts:     opts,
	}
}

// Run processes every path in order. A failure on one path never stops the
// batch; each outcome is reported as it happens.
func (p *Patcher) Run(paths []string) Summary {
	summary := Summary{Results: make([]Result, 0, len(paths))}

	for _, path := range paths {
		result := p.ProcessFile(path)
		summary.Results = append(summary.Results, result)
		if p.reporter != nil {
			p.reporter.Report(result)
		}
	}

	if p.reporter != nil {
		p.reporter.Complete()
	}

	p.logger.Debug("batch finished",
		zap.Int("files", len(paths)),
		zap.Int("fixed", summary.Count(StatusFixed)),
		zap.Int("unchanged", summary.Count(StatusUnchanged)),
		zap.Int("not_found", summary.Count(StatusNotFound)),
		zap.Int("failed", summary.Count(StatusFailed)),
		zap.Int("skipped", summary.Count(StatusSkipped)))

	return summary
}

// ProcessFile reads, rewrites and, if anything changed, writes back one file.
func (p *Patcher) ProcessFile(path string) Result {
	result := Result{Path: path}
	fullPath := p.resolve(path)
	log := p.logger.With(zap.String("path", fullPath))

	original, err := p.load(fullPath)
	if err != nil {
		return p.fail(log, result, err)
	}

	updated, n := Rewrite(original, p.opts.TypeAssertion)
	result.Replacements = n
	if updated == original {
		log.Debug("no call expressions to patch")
		result.Status = StatusUnchanged
		return result
	}

	if p.opts.DryRun {
		diff, err := UnifiedDiff(path, original, updated)
		if err != nil {
			return p.fail(log, result, err)
		}
		result.Status = StatusFixed
		result.DryRun = true
		result.Diff = diff
		return result
	}

	if p.opts.Confirm != nil {
		ok, err := p.opts.Confirm(path)
		if err != nil {
			return p.fail(log, result, fmt.Errorf("confirmation failed: %w", err))
		}
		if !ok {
			log.Info("write declined")
			result.Status = StatusSkipped
			return result
		}
	}

	if p.opts.Backup {
		backup, err := p.fs.BackupFile(fullPath)
		if err != nil {
			return p.fail(log, result, err)
		}
		result.Backup = backup
		log.Debug("backup written", zap.String("backup", backup))
	}

	if err := p.fs.ReplaceFile(fullPath, []byte(updated)); err != nil {
		return p.fail(log, result, err)
	}

	log.Info("file patched", zap.Int("replacements", n))
	result.Status = StatusFixed
	return result
}

// Inspect returns how many call expressions in path still need the type
// assertion, without writing anything.
func (p *Patcher) Inspect(path string) (int, error) {
	content, err := p.load(p.resolve(path))
	if err != nil {
		return 0, err
	}
	return Pending(content, p.opts.TypeAssertion), nil
}

// IsNotFound reports whether err means the target file does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func (p *Patcher) load(fullPath string) (string, error) {
	data, err := p.fs.ReadFile(fullPath)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

func (p *Patcher) resolve(path string) string {
	if p.opts.BaseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.opts.BaseDir, path)
}

func (p *Patcher) fail(log *zap.Logger, result Result, err error) Result {
	result.Err = err
	if IsNotFound(err) {
		log.Debug("target file not found")
		result.Status = StatusNotFound
		return result
	}
	log.Warn("failed to patch file", zap.Error(err))
	result.Status = StatusFailed
	return result
}
