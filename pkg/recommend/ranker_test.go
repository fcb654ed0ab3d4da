package recommend_test

import (
	"strings"
	"testing"

	"github.com/diagnostica/diagnostica/pkg/assessment"
	"github.com/diagnostica/diagnostica/pkg/recommend"
)

func noviceTotals() assessment.Totals {
	return assessment.Totals{
		Maturity:        assessment.MaturityNovice,
		PrimaryDomain:   assessment.DomainAcquisition,
		SecondaryDomain: assessment.DomainConversion,
		PrimaryInterest: assessment.InterestData,
	}
}

func entry(id string, priority int, domains []assessment.DomainKey, interests []assessment.InterestKey, levels []assessment.Maturity) recommend.BookEntry {
	return recommend.BookEntry{
		ID:        id,
		Title:     strings.ToUpper(id),
		Domains:   domains,
		Interests: interests,
		Levels:    levels,
		Priority:  priority,
	}
}

func TestRankCardinality(t *testing.T) {
	novice := []assessment.Maturity{assessment.MaturityNovice}
	acq := []assessment.DomainKey{assessment.DomainAcquisition}

	tests := []struct {
		name     string
		eligible int
		want     int
	}{
		{"seven eligible caps at five", 7, 5},
		{"exactly five", 5, 5},
		{"exactly three", 3, 3},
		{"shortfall below three returned as-is", 2, 2},
		{"empty catalog", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var catalog []recommend.BookEntry
			for i := 0; i < tc.eligible; i++ {
				catalog = append(catalog, entry(string(rune('a'+i)), 3, acq, nil, novice))
			}
			// An ineligible tier never leaks into the result.
			catalog = append(catalog, entry("advanced-only", 1, acq, nil,
				[]assessment.Maturity{assessment.MaturityAdvanced}))

			got := recommend.DefaultRanker().Rank(noviceTotals(), catalog)
			if len(got) != tc.want {
				t.Errorf("len = %d, want %d", len(got), tc.want)
			}
			for _, rec := range got {
				if rec.ID == "advanced-only" {
					t.Error("level filter leaked an Advanced-only entry")
				}
			}
		})
	}
}

func TestRankCompositeScoreOrdering(t *testing.T) {
	novice := []assessment.Maturity{assessment.MaturityNovice}

	catalog := []recommend.BookEntry{
		// (5-1)*0.5 = 2, no hits.
		entry("priority-only", 1, []assessment.DomainKey{assessment.DomainExperience}, nil, novice),
		// 2 + secondary domain 1*2 + tie boost 0.5 = 4.5.
		entry("secondary-hit", 1, []assessment.DomainKey{assessment.DomainConversion}, nil, novice),
		// 2 + primary domain 2*2 + interest 1 = 7.
		entry("primary-hit", 1,
			[]assessment.DomainKey{assessment.DomainAcquisition},
			[]assessment.InterestKey{assessment.InterestData}, novice),
	}

	got := recommend.DefaultRanker().Rank(noviceTotals(), catalog)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	wantOrder := []string{"primary-hit", "secondary-hit", "priority-only"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestRankTieKeepsCatalogOrder(t *testing.T) {
	novice := []assessment.Maturity{assessment.MaturityNovice}
	acq := []assessment.DomainKey{assessment.DomainAcquisition}

	catalog := []recommend.BookEntry{
		entry("first", 2, acq, nil, novice),
		entry("second", 2, acq, nil, novice),
	}

	got := recommend.DefaultRanker().Rank(noviceTotals(), catalog)
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Errorf("tied entries reordered: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestRankReasonSubstitution(t *testing.T) {
	novice := []assessment.Maturity{assessment.MaturityNovice}
	e := entry("tpl", 1, []assessment.DomainKey{assessment.DomainAcquisition}, nil, novice)
	e.ReasonTemplate = "Per {domain} con focus {interest}"

	got := recommend.DefaultRanker().Rank(noviceTotals(), []recommend.BookEntry{e})
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if !strings.HasSuffix(got[0].Reason, "Per acquisizione con focus dati") {
		t.Errorf("Reason = %q, want suffix %q", got[0].Reason, "Per acquisizione con focus dati")
	}
}

func TestRankReasonSubstitutionCaseInsensitive(t *testing.T) {
	novice := []assessment.Maturity{assessment.MaturityNovice}
	e := entry("tpl", 1, []assessment.DomainKey{assessment.DomainAcquisition}, nil, novice)
	e.ReasonTemplate = "{DOMAIN} / {Interest} / {maturity}"

	got := recommend.DefaultRanker().Rank(noviceTotals(), []recommend.BookEntry{e})
	if !strings.HasSuffix(got[0].Reason, "acquisizione / dati / novice") {
		t.Errorf("Reason = %q, want lowercase substitutions", got[0].Reason)
	}
}

func TestRankReasonClusterPrefix(t *testing.T) {
	// Novice_acq has an editorial sentence; it must come before the
	// entry's own rendered template.
	novice := []assessment.Maturity{assessment.MaturityNovice}
	e := entry("tpl", 1, []assessment.DomainKey{assessment.DomainAcquisition}, nil, novice)
	e.ReasonTemplate = "Testo del libro."

	got := recommend.DefaultRanker().Rank(noviceTotals(), []recommend.BookEntry{e})
	reason := got[0].Reason
	cluster := recommend.DefaultClusters()["Novice_acq"]

	if !strings.HasPrefix(reason, cluster) {
		t.Errorf("Reason = %q, want cluster prefix %q", reason, cluster)
	}
	if !strings.HasSuffix(reason, "Testo del libro.") {
		t.Errorf("Reason = %q, want template suffix", reason)
	}
}

func TestRankReasonGenericFallback(t *testing.T) {
	// No template: the reason falls back to a generic sentence built from
	// the axis labels. Use a maturity/domain pair without a cluster entry.
	totals := assessment.Totals{
		Maturity:        assessment.MaturityPractitioner,
		PrimaryDomain:   assessment.DomainExperience,
		PrimaryInterest: assessment.InterestPsychology,
	}
	practitioner := []assessment.Maturity{assessment.MaturityPractitioner}
	e := entry("plain", 1, []assessment.DomainKey{assessment.DomainExperience}, nil, practitioner)

	got := recommend.DefaultRanker().Rank(totals, []recommend.BookEntry{e})
	want := "Consigliato per chi lavora su esperienza con un interesse per psicologia."
	if got[0].Reason != want {
		t.Errorf("Reason = %q, want %q", got[0].Reason, want)
	}
}

func TestRankDefaultCatalogCoversEveryTier(t *testing.T) {
	catalog := recommend.DefaultCatalog()
	ranker := recommend.DefaultRanker()

	for _, m := range []assessment.Maturity{
		assessment.MaturityNovice,
		assessment.MaturityPractitioner,
		assessment.MaturityAdvanced,
	} {
		totals := assessment.Totals{
			Maturity:        m,
			PrimaryDomain:   assessment.DomainSystems,
			PrimaryInterest: assessment.InterestSystems,
		}
		got := ranker.Rank(totals, catalog)
		if len(got) < 3 || len(got) > 5 {
			t.Errorf("tier %s: %d recommendations, want 3-5", m, len(got))
		}
		for _, rec := range got {
			if rec.Reason == "" {
				t.Errorf("tier %s: empty reason for %s", m, rec.ID)
			}
		}
	}
}
