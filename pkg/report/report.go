// Package report defines output rendering for assessment results.
// Implementations handle different output targets: terminal and JSON.
package report

import (
	"io"

	"github.com/diagnostica/diagnostica/pkg/assessment"
	"github.com/diagnostica/diagnostica/pkg/recommend"
	"github.com/diagnostica/diagnostica/pkg/verdict"
)

// Report bundles everything a completed assessment produced.
type Report struct {
	UUID            string                     `json:"uuid"`
	Scores          assessment.Totals          `json:"scores"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Verdict         verdict.Result             `json:"verdict"`
}

// Renderer produces formatted output from a Report.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, rep *Report) error
}
