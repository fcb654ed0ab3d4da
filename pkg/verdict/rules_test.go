package verdict_test

import (
	"testing"

	"github.com/diagnostica/diagnostica/pkg/assessment"
	"github.com/diagnostica/diagnostica/pkg/verdict"
)

func TestDefaultRulesSelection(t *testing.T) {
	tests := []struct {
		name    string
		answers assessment.AnswerMap
		want    string
	}{
		{
			name:    "low differentiation wins over everything after it",
			answers: assessment.AnswerMap{"s1": assessment.Single(39), "d6": assessment.Single(0)},
			want:    "posizionamento-invisibile",
		},
		{
			name:    "differentiation at threshold does not trigger",
			answers: assessment.AnswerMap{"s1": assessment.Single(40)},
			want:    "quadro-misto",
		},
		{
			name: "cac unknown with rare analysis",
			answers: assessment.AnswerMap{
				"d6": assessment.Single(0),
				"d4": assessment.Single(1),
			},
			want: "navigazione-a-vista",
		},
		{
			name: "cac unknown alone falls to the milder rule",
			answers: assessment.AnswerMap{
				"d6": assessment.Single(0),
				"d4": assessment.Single(3),
			},
			want: "cac-sconosciuto",
		},
		{
			name:    "heavy channel dependence",
			answers: assessment.AnswerMap{"s2": assessment.Single(85)},
			want:    "monocanale",
		},
		{
			name:    "channel dependence at threshold does not trigger",
			answers: assessment.AnswerMap{"s2": assessment.Single(70)},
			want:    "quadro-misto",
		},
		{
			name: "weak funnel plus weak retention",
			answers: assessment.AnswerMap{
				"d2": assessment.Single(1),
				"d7": assessment.Single(0),
			},
			want: "secchio-bucato",
		},
		{
			name: "automation without documentation",
			answers: assessment.AnswerMap{
				"d8": assessment.Single(3),
				"d9": assessment.Single(1),
			},
			want: "automazione-fragile",
		},
		{
			name: "solid foundations",
			answers: assessment.AnswerMap{
				"d2": assessment.Single(3),
				"d4": assessment.Single(2),
				"d6": assessment.Single(2),
			},
			want: "pronto-a-scalare",
		},
		{
			name:    "nothing stands out",
			answers: assessment.AnswerMap{"d1": assessment.Single(2)},
			want:    "quadro-misto",
		},
		{
			name:    "multi answer on a scale id is ignored by the rules",
			answers: assessment.AnswerMap{"s1": assessment.Multi(0)},
			want:    "quadro-misto",
		},
	}

	rules := verdict.DefaultRules()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := verdict.Evaluate(tc.answers, rules)
			if got.RuleID != tc.want {
				t.Errorf("RuleID = %s, want %s", got.RuleID, tc.want)
			}
		})
	}
}

func TestDefaultRulesTensionAxesBounds(t *testing.T) {
	for _, r := range verdict.DefaultRules() {
		for _, ax := range r.TensionAxes {
			if ax.UserPosition < 0 || ax.UserPosition > 100 {
				t.Errorf("rule %s axis %s: UserPosition %d out of range", r.ID, ax.Name, ax.UserPosition)
			}
			if ax.MarketPosition < 0 || ax.MarketPosition > 100 {
				t.Errorf("rule %s axis %s: MarketPosition %d out of range", r.ID, ax.Name, ax.MarketPosition)
			}
			if ax.Name == "" || ax.LeftLabel == "" || ax.RightLabel == "" {
				t.Errorf("rule %s: axis with empty labels", r.ID)
			}
		}
	}
}
