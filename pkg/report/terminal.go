package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/diagnostica/diagnostica/pkg/assessment"
)

// TerminalRenderer renders a Report as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func maturityColor(m assessment.Maturity) string {
	if noColor() {
		return ""
	}
	switch m {
	case assessment.MaturityAdvanced:
		return colorGreen
	case assessment.MaturityPractitioner:
		return colorYellow
	default:
		return colorRed
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, rep *Report) error {
	t := rep.Scores
	mc := maturityColor(t.Maturity)

	// Header
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Diagnostica: %s — punteggio %d",
			colored(string(t.Maturity), mc), t.Level)))

	// Axis totals
	fmt.Fprintf(w, "Aree: acquisizione %d / conversione %d / esperienza %d / sistemi %d\n",
		t.Domains.Acq, t.Domains.Conv, t.Domains.Exp, t.Domains.Sist)
	fmt.Fprintf(w, "Interessi: strategia %d / sistemi %d / psicologia %d / dati %d\n\n",
		t.Interests.Strat, t.Interests.Sist, t.Interests.Psy, t.Interests.Dati)

	fmt.Fprintf(w, "Area dominante: %s", bold(assessment.DomainLabel(t.PrimaryDomain)))
	if t.SecondaryDomain != "" {
		fmt.Fprintf(w, " %s", dim("(secondaria: "+assessment.DomainLabel(t.SecondaryDomain)+")"))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Interesse dominante: %s\n\n", bold(assessment.InterestLabel(t.PrimaryInterest)))

	// Verdict
	if rep.Verdict.Verdict != "" {
		fmt.Fprintf(w, "%s\n", bold(rep.Verdict.Verdict))
		for _, line := range wrapText(rep.Verdict.Explanation, 70) {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintln(w)
	}

	// Tension axes
	if len(rep.Verdict.TensionAxes) > 0 {
		fmt.Fprintln(w, "Tensioni:")
		for _, ax := range rep.Verdict.TensionAxes {
			fmt.Fprintf(w, "  %s\n", bold(ax.Name))
			fmt.Fprintf(w, "    %-12s %s %s\n", ax.LeftLabel, tensionBar(ax.UserPosition, ax.MarketPosition), ax.RightLabel)
			if ax.Insight != "" {
				for _, line := range wrapText(ax.Insight, 66) {
					fmt.Fprintf(w, "    %s\n", dim(line))
				}
			}
		}
		fmt.Fprintln(w)
	}

	// Recommendations
	if len(rep.Recommendations) > 0 {
		fmt.Fprintln(w, "Letture consigliate:")
		for i, rec := range rep.Recommendations {
			fmt.Fprintf(w, "  %d. %s\n", i+1, bold(rec.Title))
			for _, line := range wrapText(rec.Reason, 70) {
				fmt.Fprintf(w, "     %s\n", dim(line))
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}

// tensionBar draws a 20-cell bar marking the respondent position (●) and
// the market position (|). Positions are 0-100.
func tensionBar(user, market int) string {
	const width = 20
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = '·'
	}
	mi := clamp(market*width/101, 0, width-1)
	ui := clamp(user*width/101, 0, width-1)
	cells[mi] = '|'
	cells[ui] = '●'
	return "[" + string(cells) + "]"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
