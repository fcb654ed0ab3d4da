package assessment

// DefaultSecondaryWindow is the maximum gap between the leading and
// runner-up axis values for a secondary axis to be assigned.
const DefaultSecondaryWindow = 3

// Engine scores full answer maps: accumulation over the matrix followed by
// one-time derivation of maturity and dominant axes. Engines are stateless
// after construction and safe for concurrent use.
type Engine struct {
	matrix      *Matrix
	breakpoints Breakpoints
	window      int
}

// NewEngine creates a scoring engine with the given matrix and parameters.
func NewEngine(m *Matrix, bp Breakpoints, secondaryWindow int) *Engine {
	return &Engine{matrix: m, breakpoints: bp, window: secondaryWindow}
}

// DefaultEngine creates an engine with the production matrix, breakpoints,
// and secondary window.
func DefaultEngine() *Engine {
	return NewEngine(DefaultMatrix(), DefaultBreakpoints(), DefaultSecondaryWindow)
}

// Score accumulates the answers and derives maturity, dominant domain, and
// dominant interest. An empty answer map yields all-zero totals, Novice
// maturity, and the first-declared axis of each bucket as primary.
func (e *Engine) Score(answers AnswerMap) Totals {
	t := Accumulate(answers, e.matrix)
	t.Maturity = ClassifyMaturity(t.Level, e.breakpoints)

	dom := SelectDominant(t.Domains.Axes(), e.window)
	t.PrimaryDomain = dom.Primary
	if dom.HasSecondary {
		t.SecondaryDomain = dom.Secondary
	}

	intr := SelectDominant(t.Interests.Axes(), e.window)
	t.PrimaryInterest = intr.Primary
	if intr.HasSecondary {
		t.SecondaryInterest = intr.Secondary
	}
	return t
}
