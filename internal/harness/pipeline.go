package harness

import (
	"context"
	"fmt"
)

// Pipeline runs an ordered list of checks against one environment.
type Pipeline struct {
	checks []Check
	env    *Env
}

// NewPipeline creates a pipeline over the given checks and environment.
func NewPipeline(checks []Check, env *Env) *Pipeline {
	return &Pipeline{checks: checks, env: env}
}

// Run executes every check in order with no early termination and
// returns one outcome per attempted check, in execution order. A check
// that panics is recorded as a failed outcome under its own name, so the
// returned list is always total.
func (p *Pipeline) Run(ctx context.Context) []Outcome {
	outcomes := make([]Outcome, 0, len(p.checks))
	for _, c := range p.checks {
		outcomes = append(outcomes, p.runOne(ctx, c))
		p.env.Log.Blank()
	}
	return outcomes
}

func (p *Pipeline) runOne(ctx context.Context, c Check) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			p.env.Log.Fail("%s failed with an unexpected fault: %v", c.Name(), r)
			out = Outcome{
				Check:  c.Name(),
				Passed: false,
				Note:   fmt.Sprintf("unexpected fault: %v", r),
			}
		}
	}()
	return c.Run(ctx, p.env)
}
