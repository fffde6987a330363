package patcher

// Status is the outcome of processing a single target file.
type Status int

const (
	StatusUnchanged Status = iota
	StatusFixed
	StatusNotFound
	StatusFailed
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusFixed:
		return "fixed"
	case StatusNotFound:
		return "not-found"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result describes what happened to one target file.
type Result struct {
	Path         string
	Status       Status
	Replacements int
	// DryRun is set when a fix was computed but not written.
	DryRun bool
	// Diff holds the unified diff of the change, only filled in dry-run mode.
	Diff string
	// Backup is the path of the copy taken before writing, if any.
	Backup string
	Err    error
}

// Summary collects the results of a batch in list order.
type Summary struct {
	Results []Result
}

// Count returns the number of results with the given status.
func (s Summary) Count(status Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}
