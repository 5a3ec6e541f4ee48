// Package selector expands a configuration into the subject/condition runs
// an analysis must process.
package selector

import (
	"fmt"

	"github.com/yarlson/eeg-analysis/internal/config"
)

// Run is a single subject recorded under a single condition.
type Run struct {
	Subject   config.SubjectID
	Condition config.Condition
}

func (r Run) String() string {
	return fmt.Sprintf("%s/%s", r.Subject, r.Condition)
}

// Plan returns every selected run, ordered by subject then by condition.
// With an "all" subject selection every configured subject appears; with a
// single-subject selection only that subject does.
func Plan(cfg *config.Config) []Run {
	subjects := cfg.SelectedSubjects()
	conditions := cfg.SelectedConditions()

	runs := make([]Run, 0, len(subjects)*len(conditions))
	for _, s := range subjects {
		for _, c := range conditions {
			runs = append(runs, Run{Subject: s, Condition: c})
		}
	}
	return runs
}
