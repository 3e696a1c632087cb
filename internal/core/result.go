// ABOUTME: Per-unit outcomes and batch reports shared by every pipeline stage
// ABOUTME: The batch loop, not the unit, decides whether a failure aborts the run
package core

import (
	"fmt"
	"strings"
)

// Status is the outcome of one unit of work
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Result records what happened to one file, document, or prompt
type Result struct {
	Unit   string
	Status Status
	Reason string
	Err    error
}

// Report aggregates the results of a stage run in processing order
type Report struct {
	Stage   string
	Results []Result
}

func newReport(stage string) *Report {
	return &Report{Stage: stage}
}

func (r *Report) succeed(unit string) {
	r.Results = append(r.Results, Result{Unit: unit, Status: StatusSucceeded})
}

func (r *Report) skip(unit, reason string) {
	r.Results = append(r.Results, Result{Unit: unit, Status: StatusSkipped, Reason: reason})
}

func (r *Report) fail(unit, reason string, err error) {
	r.Results = append(r.Results, Result{Unit: unit, Status: StatusFailed, Reason: reason, Err: err})
}

// Count returns the number of results with status s
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Units returns the units with status s, in processing order
func (r *Report) Units(s Status) []string {
	var units []string
	for _, res := range r.Results {
		if res.Status == s {
			units = append(units, res.Unit)
		}
	}
	return units
}

// Summary returns a one-line tally of the run
func (r *Report) Summary() string {
	var sb strings.Builder
	if r.Stage != "" {
		sb.WriteString(r.Stage)
		sb.WriteString(": ")
	}
	fmt.Fprintf(&sb, "%d succeeded, %d skipped, %d failed",
		r.Count(StatusSucceeded), r.Count(StatusSkipped), r.Count(StatusFailed))
	return sb.String()
}
