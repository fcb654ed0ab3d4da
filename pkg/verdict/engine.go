package verdict

import (
	"fmt"

	"github.com/diagnostica/diagnostica/pkg/assessment"
)

// Evaluate walks the rules in declared order and returns the outcome of the
// first rule whose condition holds. Evaluation is total: a well-formed rule
// set ends with an always-true fallback, and even a misconfigured set still
// yields the last rule's outcome rather than no verdict at all.
func Evaluate(answers assessment.AnswerMap, rules []Rule) Result {
	for _, r := range rules {
		if r.Condition != nil && r.Condition(answers) {
			return outcome(r)
		}
	}
	if len(rules) == 0 {
		return Result{}
	}
	return outcome(rules[len(rules)-1])
}

func outcome(r Rule) Result {
	axes := r.TensionAxes
	if axes == nil {
		axes = []TensionAxis{}
	}
	return Result{
		RuleID:      r.ID,
		Verdict:     r.Verdict,
		Explanation: r.Explanation,
		TensionAxes: axes,
	}
}

// ValidateRules checks the structural invariants of a rule set: at least
// one rule, unique ids, conditions present, and a fallback whose condition
// accepts an empty answer map. Intended for construction-time checks in the
// service and the CLI, not on the request path.
func ValidateRules(rules []Rule) error {
	if len(rules) == 0 {
		return fmt.Errorf("rule set is empty")
	}
	seen := make(map[string]bool, len(rules))
	for i, r := range rules {
		if r.ID == "" {
			return fmt.Errorf("rule %d has no id", i)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate rule id %q", r.ID)
		}
		seen[r.ID] = true
		if r.Condition == nil {
			return fmt.Errorf("rule %q has no condition", r.ID)
		}
		if r.Verdict == "" {
			return fmt.Errorf("rule %q has no verdict text", r.ID)
		}
	}
	last := rules[len(rules)-1]
	if !last.Condition(assessment.AnswerMap{}) {
		return fmt.Errorf("last rule %q is not a total fallback", last.ID)
	}
	return nil
}
