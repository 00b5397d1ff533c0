package types

import (
	"path/filepath"
	"strings"
	"time"
)

// Outcome is the terminal state of one entry in a sweep
type Outcome string

const (
	// OutcomeMoved means the file was copied to its category folder and the
	// source removed
	OutcomeMoved Outcome = "moved"

	// OutcomePlanned means a dry run resolved a destination without touching
	// the filesystem
	OutcomePlanned Outcome = "planned"

	// OutcomeSkipped means the entry was not a regular file
	OutcomeSkipped Outcome = "skipped"

	// OutcomeFailed means relocation failed and the source was left in place
	OutcomeFailed Outcome = "failed"
)

// EntryResult records what happened to one top-level entry
type EntryResult struct {
	Name        string   `json:"name"`
	Source      string   `json:"source"`
	Destination string   `json:"destination,omitempty"`
	Category    Category `json:"category,omitempty"`
	Outcome     Outcome  `json:"outcome"`
	Size        int64    `json:"size"`
	Error       error    `json:"-"`
	ErrorText   string   `json:"error,omitempty"`
}

// SortReport is the result of a single sweep
type SortReport struct {
	SweepID            string        `json:"sweep_id"`
	Root               string        `json:"root"`
	DryRun             bool          `json:"dry_run"`
	StartedAt          time.Time     `json:"started_at"`
	Duration           time.Duration `json:"duration"`
	FoldersCreated     []string      `json:"folders_created"`
	DirectoriesSkipped int           `json:"directories_skipped"`
	Entries            []EntryResult `json:"entries"`
}

// Add appends an entry result, filling in the error text for serialization
func (r *SortReport) Add(res EntryResult) {
	if res.Error != nil && res.ErrorText == "" {
		res.ErrorText = res.Error.Error()
	}
	r.Entries = append(r.Entries, res)
}

// Count returns the number of entries with the given outcome
func (r *SortReport) Count(outcome Outcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == outcome {
			n++
		}
	}
	return n
}

// BytesRelocated sums the size of moved or planned entries
func (r *SortReport) BytesRelocated() int64 {
	var total int64
	for _, e := range r.Entries {
		if e.Outcome == OutcomeMoved || e.Outcome == OutcomePlanned {
			total += e.Size
		}
	}
	return total
}

// ByCategory groups moved or planned entries by category
func (r *SortReport) ByCategory() map[Category][]EntryResult {
	groups := make(map[Category][]EntryResult)
	for _, e := range r.Entries {
		if e.Outcome == OutcomeMoved || e.Outcome == OutcomePlanned {
			groups[e.Category] = append(groups[e.Category], e)
		}
	}
	return groups
}

// HasFailures reports whether any entry failed to relocate
func (r *SortReport) HasFailures() bool {
	return r.Count(OutcomeFailed) > 0
}

// DisplayDestination returns the destination relative to root when it lies
// below it, else the destination unchanged.
func (e EntryResult) DisplayDestination(root string) string {
	if e.Destination == "" {
		return ""
	}
	rel, err := filepath.Rel(root, e.Destination)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return e.Destination
	}
	return rel
}
