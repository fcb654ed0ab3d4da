package recommend

import "github.com/diagnostica/diagnostica/pkg/assessment"

// DefaultCatalog returns the production book catalog.
func DefaultCatalog() []BookEntry {
	return []BookEntry{
		{
			ID:        "lead-engine",
			Title:     "Lead Engine",
			Slug:      "lead-engine",
			Cover:     "/covers/lead-engine.jpg",
			Domains:   []assessment.DomainKey{assessment.DomainAcquisition},
			Interests: []assessment.InterestKey{assessment.InterestStrategy, assessment.InterestData},
			Levels:    []assessment.Maturity{assessment.MaturityNovice, assessment.MaturityPractitioner},
			Priority:  1,
			ReasonTemplate: "Per {domain} con focus {interest}: il percorso passo passo " +
				"per costruire il tuo primo sistema di generazione contatti.",
		},
		{
			ID:        "funnel-su-misura",
			Title:     "Funnel su Misura",
			Slug:      "funnel-su-misura",
			Cover:     "/covers/funnel-su-misura.jpg",
			Domains:   []assessment.DomainKey{assessment.DomainConversion},
			Interests: []assessment.InterestKey{assessment.InterestPsychology, assessment.InterestStrategy},
			Levels:    []assessment.Maturity{assessment.MaturityNovice, assessment.MaturityPractitioner},
			Priority:  2,
			ReasonTemplate: "Un metodo concreto per trasformare i contatti in clienti, " +
				"pensato per chi lavora su {domain} a livello {maturity}.",
		},
		{
			ID:        "il-cliente-che-ritorna",
			Title:     "Il Cliente che Ritorna",
			Slug:      "il-cliente-che-ritorna",
			Cover:     "/covers/il-cliente-che-ritorna.jpg",
			Domains:   []assessment.DomainKey{assessment.DomainExperience},
			Interests: []assessment.InterestKey{assessment.InterestPsychology},
			Levels:    []assessment.Maturity{assessment.MaturityNovice, assessment.MaturityPractitioner, assessment.MaturityAdvanced},
			Priority:  2,
			ReasonTemplate: "Fidelizzazione e valore nel tempo: il complemento naturale " +
				"per chi si concentra su {domain}.",
		},
		{
			ID:        "macchine-di-marketing",
			Title:     "Macchine di Marketing",
			Slug:      "macchine-di-marketing",
			Cover:     "/covers/macchine-di-marketing.jpg",
			Domains:   []assessment.DomainKey{assessment.DomainSystems},
			Interests: []assessment.InterestKey{assessment.InterestSystems, assessment.InterestData},
			Levels:    []assessment.Maturity{assessment.MaturityPractitioner, assessment.MaturityAdvanced},
			Priority:  1,
			ReasonTemplate: "Per {domain} con focus {interest}: come progettare processi " +
				"di marketing che funzionano anche senza di te.",
		},
		{
			ID:        "numeri-che-parlano",
			Title:     "Numeri che Parlano",
			Slug:      "numeri-che-parlano",
			Cover:     "/covers/numeri-che-parlano.jpg",
			Domains:   []assessment.DomainKey{assessment.DomainAcquisition, assessment.DomainConversion},
			Interests: []assessment.InterestKey{assessment.InterestData},
			Levels:    []assessment.Maturity{assessment.MaturityNovice, assessment.MaturityPractitioner, assessment.MaturityAdvanced},
			Priority:  3,
			ReasonTemplate: "Le metriche essenziali spiegate semplici: utile a ogni livello, " +
				"indispensabile per chi ha un interesse per {interest}.",
		},
		{
			ID:        "posizionamento-radicale",
			Title:     "Posizionamento Radicale",
			Slug:      "posizionamento-radicale",
			Cover:     "/covers/posizionamento-radicale.jpg",
			Domains:   []assessment.DomainKey{assessment.DomainAcquisition},
			Interests: []assessment.InterestKey{assessment.InterestStrategy},
			Levels:    []assessment.Maturity{assessment.MaturityPractitioner, assessment.MaturityAdvanced},
			Priority:  1,
			ReasonTemplate: "Differenziarsi o sparire: la lettura strategica per chi ha già " +
				"le basi di {domain} e vuole uscire dalla guerra dei prezzi.",
		},
		{
			ID:        "vendere-senza-svendere",
			Title:     "Vendere senza Svendere",
			Slug:      "vendere-senza-svendere",
			Cover:     "/covers/vendere-senza-svendere.jpg",
			Domains:   []assessment.DomainKey{assessment.DomainConversion},
			Interests: []assessment.InterestKey{assessment.InterestPsychology},
			Levels:    []assessment.Maturity{assessment.MaturityNovice},
			Priority:  3,
		},
		{
			ID:        "processi-prima-di-tutto",
			Title:     "Processi Prima di Tutto",
			Slug:      "processi-prima-di-tutto",
			Cover:     "/covers/processi-prima-di-tutto.jpg",
			Domains:   []assessment.DomainKey{assessment.DomainSystems},
			Interests: []assessment.InterestKey{assessment.InterestSystems},
			Levels:    []assessment.Maturity{assessment.MaturityNovice, assessment.MaturityPractitioner},
			Priority:  4,
			ReasonTemplate: "Checklist e procedure per mettere ordine: il punto di partenza " +
				"per chi punta su {domain}.",
		},
		{
			ID:        "esperienza-memorabile",
			Title:     "Esperienza Memorabile",
			Slug:      "esperienza-memorabile",
			Cover:     "/covers/esperienza-memorabile.jpg",
			Domains:   []assessment.DomainKey{assessment.DomainExperience},
			Interests: []assessment.InterestKey{assessment.InterestStrategy, assessment.InterestPsychology},
			Levels:    []assessment.Maturity{assessment.MaturityPractitioner, assessment.MaturityAdvanced},
			Priority:  2,
			ReasonTemplate: "Come trasformare ogni punto di contatto in un vantaggio " +
				"competitivo, a livello {maturity}.",
		},
		{
			ID:        "crescita-composta",
			Title:     "Crescita Composta",
			Slug:      "crescita-composta",
			Cover:     "/covers/crescita-composta.jpg",
			Domains:   []assessment.DomainKey{assessment.DomainAcquisition, assessment.DomainSystems},
			Interests: []assessment.InterestKey{assessment.InterestStrategy, assessment.InterestData},
			Levels:    []assessment.Maturity{assessment.MaturityAdvanced},
			Priority:  1,
			ReasonTemplate: "Per chi ha già un sistema che funziona: scalare {domain} " +
				"senza perdere margine né controllo.",
		},
		{
			ID:        "il-primo-funnel",
			Title:     "Il Primo Funnel",
			Slug:      "il-primo-funnel",
			Cover:     "/covers/il-primo-funnel.jpg",
			Domains:   []assessment.DomainKey{assessment.DomainConversion, assessment.DomainAcquisition},
			Interests: []assessment.InterestKey{assessment.InterestSystems},
			Levels:    []assessment.Maturity{assessment.MaturityNovice},
			Priority:  5,
		},
	}
}
