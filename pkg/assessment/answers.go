package assessment

import (
	"encoding/json"
	"sort"
)

// Answer is one respondent answer: either a single numeric value (an option
// index, or a raw 0-100 slider value) or a set of option indices for
// multi-select questions.
type Answer struct {
	value   int
	indices []int
	multi   bool
}

// Single builds a single-valued answer.
func Single(v int) Answer {
	return Answer{value: v}
}

// Multi builds a multi-select answer from the given option indices.
func Multi(indices ...int) Answer {
	return Answer{indices: append([]int(nil), indices...), multi: true}
}

// IsMulti reports whether the answer carries a set of indices.
func (a Answer) IsMulti() bool { return a.multi }

// Value returns the single numeric value. ok is false for multi answers.
func (a Answer) Value() (int, bool) {
	if a.multi {
		return 0, false
	}
	return a.value, true
}

// Indices returns the selected option indices of a multi answer.
func (a Answer) Indices() []int {
	return append([]int(nil), a.indices...)
}

// Contains reports whether a multi answer includes the given index.
func (a Answer) Contains(idx int) bool {
	for _, i := range a.indices {
		if i == idx {
			return true
		}
	}
	return false
}

// MarshalJSON encodes a single answer as a number and a multi answer as an
// array of numbers, matching the wire shape the survey front end sends.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		indices := a.indices
		if indices == nil {
			indices = []int{}
		}
		return json.Marshal(indices)
	}
	return json.Marshal(a.value)
}

// UnmarshalJSON accepts a number or an array of numbers.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var single float64
	if err := json.Unmarshal(data, &single); err == nil {
		*a = Single(int(single))
		return nil
	}
	var many []float64
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	indices := make([]int, 0, len(many))
	for _, f := range many {
		indices = append(indices, int(f))
	}
	*a = Multi(indices...)
	return nil
}

// AnswerMap maps question ids to answers. Entries with question ids the
// catalog does not know, or with out-of-range indices, are carried but
// contribute nothing during accumulation.
type AnswerMap map[string]Answer

// Single returns the single numeric value recorded for a question id.
// ok is false when the question is unanswered or holds a multi answer.
func (m AnswerMap) Single(qid string) (int, bool) {
	a, ok := m[qid]
	if !ok {
		return 0, false
	}
	return a.Value()
}

// UnmarshalJSON decodes the survey wire format. Entries that are neither a
// number nor an array of numbers are dropped silently: partial or tampered
// payloads degrade, they never fail.
func (m *AnswerMap) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(AnswerMap, len(raw))
	for qid, msg := range raw {
		if string(msg) == "null" {
			continue
		}
		var a Answer
		if err := json.Unmarshal(msg, &a); err != nil {
			continue
		}
		out[qid] = a
	}
	*m = out
	return nil
}

// QuestionIDs returns the answered question ids in sorted order.
func (m AnswerMap) QuestionIDs() []string {
	ids := make([]string, 0, len(m))
	for qid := range m {
		ids = append(ids, qid)
	}
	sort.Strings(ids)
	return ids
}
