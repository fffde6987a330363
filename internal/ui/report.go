package ui

import (
	"fmt"
	"strings"

	"github.com/zoro11031/fix-result-types/internal/patcher"
)

// Report prints the status line for one processed file.
func (u *UI) Report(r patcher.Result) {
	switch r.Status {
	case patcher.StatusFixed:
		if r.DryRun {
			u.colorCyan.Fprintf(u.output, "~ Would fix: %s\n", r.Path)
			u.printDiff(r.Diff)
			return
		}
		u.colorSuccess.Fprintf(u.output, "+ Fixed: %s\n", r.Path)
		if r.Backup != "" {
			fmt.Fprintf(u.output, "    backup: %s\n", r.Backup)
		}
	case patcher.StatusUnchanged:
		fmt.Fprintf(u.output, "  No changes: %s\n", r.Path)
	case patcher.StatusNotFound:
		u.colorWarning.Fprintf(u.output, "! Not found: %s\n", r.Path)
	case patcher.StatusSkipped:
		u.colorWarning.Fprintf(u.output, "- Skipped: %s\n", r.Path)
	default:
		u.colorError.Fprintf(u.output, "X Error in %s: %v\n", r.Path, r.Err)
	}
}

// Complete prints the end-of-run line.
func (u *UI) Complete() {
	fmt.Fprintln(u.output)
	fmt.Fprintln(u.output, "Processing complete")
}

func (u *UI) printDiff(diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			u.colorBold.Fprint(u.output, line)
		case strings.HasPrefix(line, "+"):
			u.colorSuccess.Fprint(u.output, line)
		case strings.HasPrefix(line, "-"):
			u.colorError.Fprint(u.output, line)
		default:
			fmt.Fprint(u.output, line)
		}
	}
}
