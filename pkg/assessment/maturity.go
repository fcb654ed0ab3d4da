package assessment

// Breakpoints are the maturity tier boundaries over the accumulated level
// scalar. A level at or below NoviceMax is Novice, at or below
// PractitionerMax is Practitioner, anything above is Advanced.
type Breakpoints struct {
	NoviceMax       int
	PractitionerMax int
}

// DefaultBreakpoints returns the production tier boundaries.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{NoviceMax: 15, PractitionerMax: 35}
}

// ClassifyMaturity maps the level scalar to its tier. Total over all ints.
func ClassifyMaturity(level int, bp Breakpoints) Maturity {
	switch {
	case level <= bp.NoviceMax:
		return MaturityNovice
	case level <= bp.PractitionerMax:
		return MaturityPractitioner
	default:
		return MaturityAdvanced
	}
}
