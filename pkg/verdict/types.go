// Package verdict evaluates an ordered list of condition-outcome rules over
// the raw survey answers and produces a narrative diagnosis plus the data
// for the self-perception versus market-perception gap visualization.
//
// The rule model is deliberately separate from the point-accumulation model:
// conditions inspect raw answers directly and never consult score totals.
package verdict

import "github.com/diagnostica/diagnostica/pkg/assessment"

// TensionAxis expresses the gap between the respondent's self-assessment
// and an assumed market perception on one dimension. Positions are 0-100.
// The numbers are rule-fixed illustrative constants, not derived from the
// respondent's scale answers.
type TensionAxis struct {
	Name           string `json:"name"`
	LeftLabel      string `json:"leftLabel"`
	RightLabel     string `json:"rightLabel"`
	UserPosition   int    `json:"userPosition"`
	MarketPosition int    `json:"marketPosition"`
	Insight        string `json:"insight"`
}

// Rule pairs a predicate over the raw answers with its diagnosis. Rules form
// an ordered list and the first match wins, so order is part of the
// contract. The last rule of a well-formed set has a condition that is
// always true.
type Rule struct {
	ID          string
	Condition   func(assessment.AnswerMap) bool
	Verdict     string
	Explanation string
	TensionAxes []TensionAxis
}

// Result is the selected diagnosis.
type Result struct {
	RuleID      string        `json:"ruleId"`
	Verdict     string        `json:"verdict"`
	Explanation string        `json:"explanation"`
	TensionAxes []TensionAxis `json:"tensionAxes"`
}
