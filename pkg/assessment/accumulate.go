package assessment

// Accumulate folds an answer map into cumulative totals using the given
// score definition matrix. Only the additive components are filled in; the
// derived fields (maturity, dominant axes) are computed afterwards by
// Engine.Score.
//
// Unknown question ids and out-of-range option indices contribute nothing.
// A question id present in both tables is resolved by the answer's runtime
// shape: a single value looks up Single, a set of indices looks up Multi.
// Vector addition is commutative, so map iteration order never affects the
// result.
func Accumulate(answers AnswerMap, m *Matrix) Totals {
	var v Vector
	for qid, a := range answers {
		if a.IsMulti() {
			opts, ok := m.Multi[qid]
			if !ok {
				continue
			}
			for _, idx := range a.Indices() {
				if idx >= 0 && idx < len(opts) {
					v = v.Add(opts[idx])
				}
			}
			continue
		}
		opts, ok := m.Single[qid]
		if !ok {
			continue
		}
		idx, _ := a.Value()
		if idx >= 0 && idx < len(opts) {
			v = v.Add(opts[idx])
		}
	}
	return Totals{Level: v.Level, Domains: v.Domains, Interests: v.Interests}
}
