package recommend

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/diagnostica/diagnostica/pkg/assessment"
)

// Weights holds the coefficients of the composite recommendation score.
type Weights struct {
	// PriorityWeight multiplies (5 - entry.Priority).
	PriorityWeight float64
	// DomainWeight multiplies the domain hit: 2 for the primary domain,
	// 1 for the secondary, 0 otherwise.
	DomainWeight float64
	// InterestWeight is added when the entry covers the primary interest.
	InterestWeight float64
	// TieBoost is added when the entry covers the secondary domain,
	// independently of the domain hit.
	TieBoost float64
	// MaxResults caps the returned list.
	MaxResults int
}

// DefaultWeights returns the production ranking coefficients.
func DefaultWeights() Weights {
	return Weights{
		PriorityWeight: 0.5,
		DomainWeight:   2,
		InterestWeight: 1,
		TieBoost:       0.5,
		MaxResults:     5,
	}
}

// Ranker scores the catalog against computed totals. Stateless after
// construction and safe for concurrent use.
type Ranker struct {
	weights  Weights
	clusters map[string]string
}

// NewRanker creates a ranker with the given weights and the default
// editorial cluster sentences.
func NewRanker(w Weights) *Ranker {
	if w.MaxResults <= 0 {
		w.MaxResults = DefaultWeights().MaxResults
	}
	return &Ranker{weights: w, clusters: DefaultClusters()}
}

// DefaultRanker creates a ranker with production weights.
func DefaultRanker() *Ranker {
	return NewRanker(DefaultWeights())
}

// Rank filters the catalog to the respondent's maturity tier, scores the
// survivors, and returns up to MaxResults recommendations with rendered
// reasons. When the tier itself has fewer than three eligible entries the
// short list is returned as-is; there is no backfill from other tiers.
func (r *Ranker) Rank(totals assessment.Totals, catalog []BookEntry) []Recommendation {
	type candidate struct {
		entry BookEntry
		score float64
	}

	var candidates []candidate
	for _, e := range catalog {
		if !e.hasLevel(totals.Maturity) {
			continue
		}
		candidates = append(candidates, candidate{entry: e, score: r.score(e, totals)})
	}

	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > r.weights.MaxResults {
		candidates = candidates[:r.weights.MaxResults]
	}

	recs := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recs = append(recs, Recommendation{
			ID:     c.entry.ID,
			Title:  c.entry.Title,
			Slug:   c.entry.Slug,
			Cover:  c.entry.Cover,
			Reason: r.reason(c.entry, totals),
		})
	}
	return recs
}

func (r *Ranker) score(e BookEntry, t assessment.Totals) float64 {
	w := r.weights
	s := float64(5-e.Priority) * w.PriorityWeight

	switch {
	case e.hasDomain(t.PrimaryDomain):
		s += 2 * w.DomainWeight
	case t.SecondaryDomain != "" && e.hasDomain(t.SecondaryDomain):
		s += 1 * w.DomainWeight
	}

	if e.hasInterest(t.PrimaryInterest) {
		s += w.InterestWeight
	}
	if t.SecondaryDomain != "" && e.hasDomain(t.SecondaryDomain) {
		s += w.TieBoost
	}
	return s
}

var placeholderRe = regexp.MustCompile(`(?i)\{(domain|interest|maturity)\}`)

func (r *Ranker) reason(e BookEntry, t assessment.Totals) string {
	domain := assessment.DomainLabel(t.PrimaryDomain)
	interest := assessment.InterestLabel(t.PrimaryInterest)
	maturity := strings.ToLower(string(t.Maturity))

	var b strings.Builder
	if sentence, ok := r.clusters[string(t.Maturity)+"_"+string(t.PrimaryDomain)]; ok {
		b.WriteString(sentence)
		b.WriteString(" ")
	}

	if e.ReasonTemplate != "" {
		b.WriteString(substitute(e.ReasonTemplate, domain, interest, maturity))
	} else {
		b.WriteString(fmt.Sprintf(
			"Consigliato per chi lavora su %s con un interesse per %s.",
			domain, interest))
	}
	return b.String()
}

func substitute(template, domain, interest, maturity string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		switch strings.ToLower(m) {
		case "{domain}":
			return domain
		case "{interest}":
			return interest
		default:
			return maturity
		}
	})
}
