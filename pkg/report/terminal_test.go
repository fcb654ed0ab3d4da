package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/diagnostica/diagnostica/pkg/assessment"
	"github.com/diagnostica/diagnostica/pkg/recommend"
	"github.com/diagnostica/diagnostica/pkg/verdict"
)

func sampleReport() *Report {
	return &Report{
		UUID: "11111111-2222-3333-4444-555555555555",
		Scores: assessment.Totals{
			Level:           6,
			Domains:         assessment.DomainScores{Acq: 3, Conv: 4, Exp: 4, Sist: 7},
			Interests:       assessment.InterestScores{Strat: 5, Sist: 7, Psy: 3, Dati: 4},
			Maturity:        assessment.MaturityNovice,
			PrimaryDomain:   assessment.DomainSystems,
			SecondaryDomain: assessment.DomainConversion,
			PrimaryInterest: assessment.InterestSystems,
		},
		Recommendations: []recommend.Recommendation{
			{ID: "b1", Title: "Processi prima di tutto", Reason: "Per sistemi con focus sistemi"},
		},
		Verdict: verdict.Result{
			RuleID:      "quadro-misto",
			Verdict:     "Un quadro con luci e ombre",
			Explanation: "Alcune fondamenta ci sono, altre mancano.",
			TensionAxes: []verdict.TensionAxis{
				{Name: "Struttura", LeftLabel: "Improvvisazione", RightLabel: "Processo", UserPosition: 30, MarketPosition: 65, Insight: "Il mercato si muove verso processi espliciti."},
			},
		},
	}
}

func TestTerminalRender(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	if err := (&TerminalRenderer{}).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Novice",
		"punteggio 6",
		"sistemi 7",
		"Area dominante: sistemi",
		"secondaria: conversione",
		"Un quadro con luci e ombre",
		"Tensioni:",
		"Improvvisazione",
		"Letture consigliate:",
		"Processi prima di tutto",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalRenderNoColorStripsANSI(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	if err := (&TerminalRenderer{}).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), "\033[") {
		t.Error("output contains ANSI escapes despite NO_COLOR")
	}
}

func TestTensionBar(t *testing.T) {
	tests := []struct {
		name         string
		user, market int
	}{
		{"extremes", 0, 100},
		{"same cell", 50, 50},
		{"out of range clamps", -10, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := tensionBar(tt.user, tt.market)
			if len([]rune(bar)) != 22 {
				t.Errorf("bar %q has %d runes, want 22", bar, len([]rune(bar)))
			}
			if !strings.ContainsRune(bar, '●') {
				t.Errorf("bar %q missing user marker", bar)
			}
		})
	}
}

func TestJSONRender(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONRenderer{}).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var got Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Scores.Level != 6 {
		t.Errorf("Level = %d, want 6", got.Scores.Level)
	}
	if len(got.Recommendations) != 1 {
		t.Errorf("got %d recommendations, want 1", len(got.Recommendations))
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("uno due tre quattro cinque", 10)
	for _, l := range lines {
		if len(l) > 10 {
			t.Errorf("line %q exceeds width", l)
		}
	}
	if got := strings.Join(lines, " "); got != "uno due tre quattro cinque" {
		t.Errorf("wrap lost words: %q", got)
	}
	if wrapText("", 10) != nil {
		t.Error("empty input should return nil")
	}
}
