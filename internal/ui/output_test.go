package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/zoro11031/fix-result-types/internal/patcher"
)

func newTestUI(t *testing.T) (*UI, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	return NewWithWriter(&buf), &buf
}

func TestReportStatusLines(t *testing.T) {
	tests := []struct {
		name     string
		result   patcher.Result
		expected string
	}{
		{
			name:     "fixed",
			result:   patcher.Result{Path: "src/a.tsx", Status: patcher.StatusFixed, Replacements: 1},
			expected: "+ Fixed: src/a.tsx\n",
		},
		{
			name:     "fixed with backup",
			result:   patcher.Result{Path: "src/a.tsx", Status: patcher.StatusFixed, Backup: "src/a.tsx.backup.1"},
			expected: "+ Fixed: src/a.tsx\n    backup: src/a.tsx.backup.1\n",
		},
		{
			name:     "unchanged",
			result:   patcher.Result{Path: "src/b.tsx", Status: patcher.StatusUnchanged},
			expected: "  No changes: src/b.tsx\n",
		},
		{
			name:     "not found",
			result:   patcher.Result{Path: "src/c.tsx", Status: patcher.StatusNotFound},
			expected: "! Not found: src/c.tsx\n",
		},
		{
			name:     "error",
			result:   patcher.Result{Path: "src/d.tsx", Status: patcher.StatusFailed, Err: errors.New("permission denied")},
			expected: "X Error in src/d.tsx: permission denied\n",
		},
		{
			name:     "skipped",
			result:   patcher.Result{Path: "src/e.tsx", Status: patcher.StatusSkipped},
			expected: "- Skipped: src/e.tsx\n",
		},
		{
			name: "dry run",
			result: patcher.Result{
				Path:   "src/f.tsx",
				Status: patcher.StatusFixed,
				DryRun: true,
				Diff:   "--- a/src/f.tsx\n+++ b/src/f.tsx\n@@ -1 +1 @@\n-old\n+new\n",
			},
			expected: "~ Would fix: src/f.tsx\n--- a/src/f.tsx\n+++ b/src/f.tsx\n@@ -1 +1 @@\n-old\n+new\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, buf := newTestUI(t)
			u.Report(tt.result)
			if got := buf.String(); got != tt.expected {
				t.Errorf("Report() output = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	u, buf := newTestUI(t)
	u.Complete()

	expected := "\nProcessing complete\n"
	if got := buf.String(); got != expected {
		t.Errorf("Complete() output = %q, want %q", got, expected)
	}
}

func TestInfoAndWarning(t *testing.T) {
	u, buf := newTestUI(t)
	u.Infof("Base directory: %s", "web")
	u.Warning("careful")

	expected := "[INFO] Base directory: web\n[WARNING] careful\n"
	if got := buf.String(); got != expected {
		t.Errorf("output = %q, want %q", got, expected)
	}
}

func TestPromptYesNoNonInteractive(t *testing.T) {
	u, _ := newTestUI(t)
	u.SetNonInteractive(true)

	ok, err := u.ConfirmWrite("src/a.tsx")
	if err != nil {
		t.Fatalf("ConfirmWrite() error = %v", err)
	}
	if !ok {
		t.Error("ConfirmWrite() = false, want default true in non-interactive mode")
	}
}
