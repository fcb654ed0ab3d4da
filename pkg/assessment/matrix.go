package assessment

// Matrix is the score definition matrix: per-question, per-option-index
// contribution vectors. Single covers single-choice questions; Multi covers
// multi-select questions, where every selected option contributes its own
// vector. The matrix is an explicit value passed to Accumulate so synthetic
// matrices can drive tests.
type Matrix struct {
	Single map[string][]Vector
	Multi  map[string][]Vector
}

func vec(liv, acq, conv, exp, sist, strat, sistInt, psy, dati int) Vector {
	return Vector{
		Level:     liv,
		Domains:   DomainScores{Acq: acq, Conv: conv, Exp: exp, Sist: sist},
		Interests: InterestScores{Strat: strat, Sist: sistInt, Psy: psy, Dati: dati},
	}
}

// DefaultMatrix returns the production scoring tables for the default
// questionnaire. Scale questions (s1, s2) have no entry: their raw values
// feed the verdict rules, not the point model.
func DefaultMatrix() *Matrix {
	return &Matrix{
		Single: map[string][]Vector{
			"d1": {
				vec(0, 1, 0, 0, 0, 1, 0, 0, 0),
				vec(1, 2, 1, 0, 0, 1, 0, 1, 1),
				vec(2, 2, 2, 1, 1, 2, 1, 1, 2),
				vec(3, 2, 3, 3, 3, 3, 3, 2, 2),
			},
			"d2": {
				vec(0, 0, 1, 0, 0, 0, 0, 1, 0),
				vec(1, 0, 2, 0, 0, 1, 0, 1, 0),
				vec(2, 1, 3, 1, 1, 2, 1, 1, 1),
				vec(3, 1, 4, 1, 2, 2, 2, 1, 2),
			},
			"d3": {
				vec(0, 0, 1, 0, 0, 0, 0, 1, 0),
				vec(1, 0, 2, 1, 0, 0, 0, 2, 0),
				vec(2, 1, 3, 1, 1, 1, 1, 2, 1),
				vec(3, 1, 3, 2, 2, 1, 2, 3, 1),
			},
			"d4": {
				vec(0, 0, 0, 0, 0, 0, 0, 1, 0),
				vec(1, 0, 1, 0, 1, 0, 0, 0, 2),
				vec(2, 1, 1, 1, 2, 1, 1, 0, 3),
				vec(3, 1, 1, 1, 3, 2, 2, 0, 4),
			},
			"d5": {
				vec(0, 0, 1, 0, 0, 1, 0, 0, 0),
				vec(1, 0, 1, 0, 0, 1, 0, 0, 1),
				vec(2, 0, 2, 1, 0, 2, 0, 1, 1),
				vec(3, 0, 2, 2, 0, 3, 0, 3, 1),
			},
			"d6": {
				vec(0, 0, 0, 0, 0, 0, 0, 0, 0),
				vec(1, 1, 0, 0, 0, 0, 0, 0, 1),
				vec(2, 2, 0, 0, 1, 1, 1, 0, 2),
				vec(3, 3, 0, 0, 1, 1, 1, 0, 4),
			},
			"d7": {
				vec(0, 0, 0, 1, 0, 0, 0, 1, 0),
				vec(1, 0, 0, 2, 0, 0, 0, 1, 0),
				vec(2, 0, 1, 3, 1, 1, 1, 2, 1),
				vec(3, 0, 1, 4, 1, 1, 1, 2, 2),
			},
			"d8": {
				vec(0, 0, 0, 0, 0, 0, 0, 0, 0),
				vec(1, 0, 0, 0, 2, 0, 2, 0, 0),
				vec(2, 1, 1, 1, 3, 1, 3, 0, 1),
				vec(3, 1, 1, 1, 4, 1, 4, 0, 2),
			},
			"d9": {
				vec(0, 0, 0, 0, 0, 0, 0, 0, 0),
				vec(1, 0, 0, 0, 1, 0, 1, 0, 0),
				vec(2, 1, 1, 1, 2, 1, 2, 1, 1),
				vec(3, 1, 1, 1, 4, 2, 4, 1, 2),
			},
			"d10": {
				vec(0, 0, 0, 0, 0, 0, 0, 0, 0),
				vec(1, 1, 0, 0, 0, 1, 0, 1, 0),
				vec(2, 1, 1, 1, 0, 2, 0, 1, 2),
				vec(3, 1, 2, 1, 1, 3, 0, 1, 3),
			},
		},
		Multi: map[string][]Vector{
			"m1": {
				vec(1, 1, 0, 1, 0, 0, 0, 1, 0),
				vec(1, 2, 0, 0, 0, 0, 0, 0, 1),
				vec(1, 0, 1, 1, 1, 0, 1, 0, 0),
				vec(1, 1, 1, 0, 0, 1, 0, 0, 1),
				vec(1, 1, 0, 1, 0, 1, 0, 1, 0),
				vec(1, 1, 1, 1, 0, 0, 1, 1, 0),
			},
			"m2": {
				vec(0, 0, 0, 0, 0, 2, 0, 0, 0),
				vec(0, 0, 0, 0, 1, 0, 2, 0, 0),
				vec(0, 0, 1, 0, 0, 0, 0, 2, 0),
				vec(0, 0, 0, 0, 0, 0, 0, 0, 2),
			},
		},
	}
}
