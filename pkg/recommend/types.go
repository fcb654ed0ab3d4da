// Package recommend ranks the book catalog against computed score totals
// and produces a short list of justified reading recommendations.
package recommend

import "github.com/diagnostica/diagnostica/pkg/assessment"

// BookEntry is one catalog item eligible for recommendation.
type BookEntry struct {
	ID        string                   `json:"id"`
	Title     string                   `json:"title"`
	Slug      string                   `json:"slug,omitempty"`
	Cover     string                   `json:"cover,omitempty"`
	Domains   []assessment.DomainKey   `json:"domains"`
	Interests []assessment.InterestKey `json:"interests"`
	Levels    []assessment.Maturity    `json:"levels"`
	// Priority ranks editorial importance, 1 being the highest.
	Priority int `json:"priority"`
	// ReasonTemplate may contain {domain}, {interest}, and {maturity}
	// placeholders, substituted case-insensitively with lowercase labels.
	ReasonTemplate string `json:"reasonTemplate,omitempty"`
}

func (e BookEntry) hasDomain(k assessment.DomainKey) bool {
	for _, d := range e.Domains {
		if d == k {
			return true
		}
	}
	return false
}

func (e BookEntry) hasInterest(k assessment.InterestKey) bool {
	for _, i := range e.Interests {
		if i == k {
			return true
		}
	}
	return false
}

func (e BookEntry) hasLevel(m assessment.Maturity) bool {
	for _, l := range e.Levels {
		if l == m {
			return true
		}
	}
	return false
}

// Recommendation is a materialized recommendation: the reason is fully
// rendered text, not a reference back to the catalog entry.
type Recommendation struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Slug   string `json:"slug,omitempty"`
	Cover  string `json:"cover,omitempty"`
	Reason string `json:"reason"`
}
