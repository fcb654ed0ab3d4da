package assessment

import "sort"

// Axis is one (key, value) pair of a score bucket.
type Axis[K ~string] struct {
	Key   K
	Value int
}

// Dominant is the outcome of dominant-axis selection.
type Dominant[K ~string] struct {
	Primary      K
	Secondary    K
	HasSecondary bool
}

// SelectDominant picks the highest-valued axis, plus a secondary when the
// runner-up trails the leader by at most window points. Equal values keep
// the declared order of axes (stable sort), so ties resolve the same way on
// every run. An empty slice yields a zero Dominant.
func SelectDominant[K ~string](axes []Axis[K], window int) Dominant[K] {
	if len(axes) == 0 {
		return Dominant[K]{}
	}
	sorted := make([]Axis[K], len(axes))
	copy(sorted, axes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	d := Dominant[K]{Primary: sorted[0].Key}
	if len(sorted) > 1 && sorted[0].Value-sorted[1].Value <= window {
		d.Secondary = sorted[1].Key
		d.HasSecondary = true
	}
	return d
}
