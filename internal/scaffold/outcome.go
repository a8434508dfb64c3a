package scaffold

type Status string

const (
	// StatusCreated marks a file written to disk.
	StatusCreated Status = "created"
	// StatusPlanned marks a file a dry-run batch would have written.
	StatusPlanned Status = "planned"
	// StatusSkipped marks an existing file left untouched because
	// overwrite was disabled. Skips are not failures.
	StatusSkipped Status = "skipped_existing"
	// StatusFailed marks a descriptor whose directory or write step
	// errored. Err carries the cause.
	StatusFailed Status = "failed"
)

// Outcome records the terminal state of one descriptor.
type Outcome struct {
	// Path is the descriptor path as given, after trimming.
	Path string
	// Target is the resolved absolute path, empty when resolution failed.
	Target string
	Status Status
	Err    error
}

// Created filters outcomes down to the targets that were written, or
// would have been under dry-run, preserving batch order.
func Created(outcomes []Outcome) []string {
	targets := make([]string, 0, len(outcomes))
	for _, out := range outcomes {
		if out.Status == StatusCreated || out.Status == StatusPlanned {
			targets = append(targets, out.Target)
		}
	}
	return targets
}
