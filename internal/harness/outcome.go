package harness

// Outcome records the result of a single check. Immutable once recorded.
// Matches the .buildtest/checks/<name>.json schema.
type Outcome struct {
	Check  string `json:"check"`
	Passed bool   `json:"passed"`
	Note   string `json:"note,omitempty"`
}

// LastRun summarizes a full pipeline run.
// Matches the .buildtest/last-run.json schema.
type LastRun struct {
	Status string   `json:"status"` // "pass" or "fail"
	Checks []string `json:"checks"` // Ordered list of checks attempted
	Failed []string `json:"failed"` // Names of failed checks
}

// Summarize folds an outcome list into a LastRun record.
func Summarize(outcomes []Outcome) LastRun {
	last := LastRun{Status: "pass"}
	for _, o := range outcomes {
		last.Checks = append(last.Checks, o.Check)
		if !o.Passed {
			last.Failed = append(last.Failed, o.Check)
		}
	}
	if len(last.Failed) > 0 {
		last.Status = "fail"
	}
	return last
}
