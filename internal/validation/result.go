package validation

// Step is a single output check.
type Step struct {
	Name    string
	Passed  bool
	Details string
}

// Result contains every check made on one output file.
type Result struct {
	Steps []Step
}

func (r *Result) add(name string, passed bool, details string) {
	r.Steps = append(r.Steps, Step{Name: name, Passed: passed, Details: details})
}

// IsValid returns true if all checks passed.
func (r *Result) IsValid() bool {
	for _, s := range r.Steps {
		if !s.Passed {
			return false
		}
	}
	return true
}

// Failed returns the checks that did not pass.
func (r *Result) Failed() []Step {
	var failed []Step
	for _, s := range r.Steps {
		if !s.Passed {
			failed = append(failed, s)
		}
	}
	return failed
}
