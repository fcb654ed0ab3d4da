package assessment

// QuestionType discriminates how a question is answered.
type QuestionType string

const (
	// QuestionSingle takes exactly one option index.
	QuestionSingle QuestionType = "single"
	// QuestionMulti takes a set of option indices.
	QuestionMulti QuestionType = "multi"
	// QuestionScale takes a raw value between Min and Max. Scale answers
	// never enter the score matrix; the verdict rules read them directly.
	QuestionScale QuestionType = "scale"
)

// Question is a static questionnaire entry. Options have no identity beyond
// their position: the option index is the answer value.
type Question struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Text    string       `json:"text"`
	Options []string     `json:"options,omitempty"`
	Min     int          `json:"min,omitempty"`
	Max     int          `json:"max,omitempty"`
}

// DefaultQuestionnaire returns the production diagnostic survey.
func DefaultQuestionnaire() []Question {
	return []Question{
		{
			ID: "d1", Type: QuestionSingle,
			Text: "Come acquisisci oggi la maggior parte dei tuoi clienti?",
			Options: []string{
				"Passaparola spontaneo, nessuna attività strutturata",
				"Qualche campagna occasionale quando serve",
				"Canali attivi con un budget ricorrente",
				"Un sistema di acquisizione misurato e ottimizzato",
			},
		},
		{
			ID: "d2", Type: QuestionSingle,
			Text: "Quanto è strutturato il tuo percorso di vendita?",
			Options: []string{
				"Non esiste un percorso definito",
				"Esiste, ma solo nella testa di chi vende",
				"Fasi definite e ripetibili",
				"Percorso documentato con metriche per ogni fase",
			},
		},
		{
			ID: "d3", Type: QuestionSingle,
			Text: "Come gestisci il follow-up dei contatti interessati?",
			Options: []string{
				"Rispondo quando capita",
				"Richiamo a memoria chi mi sembra più caldo",
				"Promemoria e sequenze di contatto regolari",
				"Follow-up automatico segmentato per comportamento",
			},
		},
		{
			ID: "d4", Type: QuestionSingle,
			Text: "Con quale frequenza analizzi i dati del tuo marketing?",
			Options: []string{
				"Mai, decido a sensazione",
				"Solo quando qualcosa va storto",
				"Ogni mese, con report basilari",
				"Dashboard sempre aggiornate e decisioni guidate dai numeri",
			},
		},
		{
			ID: "d5", Type: QuestionSingle,
			Text: "Come definisci i prezzi della tua offerta?",
			Options: []string{
				"Guardo i concorrenti e mi allineo",
				"Costi più un margine",
				"Faccio qualche test di prezzo ogni tanto",
				"Strategia di prezzo costruita sul valore percepito",
			},
		},
		{
			ID: "d6", Type: QuestionSingle,
			Text: "Conosci il costo di acquisizione di un cliente?",
			Options: []string{
				"Non lo so",
				"Ne ho un'idea approssimativa",
				"Lo calcolo per i canali principali",
				"Lo monitoro per canale e per segmento",
			},
		},
		{
			ID: "d7", Type: QuestionSingle,
			Text: "Cosa succede dopo il primo acquisto di un cliente?",
			Options: []string{
				"Nulla di strutturato",
				"Qualche email di ringraziamento",
				"Sequenze post-vendita e richiesta di recensioni",
				"Programma di fidelizzazione con risultati misurati",
			},
		},
		{
			ID: "d8", Type: QuestionSingle,
			Text: "Quanto del tuo marketing è automatizzato?",
			Options: []string{
				"Tutto manuale",
				"Qualche automazione di base",
				"Flussi automatici sui canali principali",
				"Ecosistema integrato tra tutti gli strumenti",
			},
		},
		{
			ID: "d9", Type: QuestionSingle,
			Text: "Quanto sono documentati i tuoi processi di marketing?",
			Options: []string{
				"Non sono documentati",
				"Appunti sparsi qua e là",
				"Procedure scritte per le attività principali",
				"Playbook completi che chiunque può seguire",
			},
		},
		{
			ID: "d10", Type: QuestionSingle,
			Text: "Che ruolo hanno i test e gli esperimenti nel tuo marketing?",
			Options: []string{
				"Nessuno",
				"Provo cose nuove senza misurarle",
				"A/B test occasionali",
				"Programma continuo di sperimentazione",
			},
		},
		{
			ID: "s1", Type: QuestionScale,
			Text: "Da 0 a 100, quanto ti percepisci diverso dai tuoi concorrenti?",
			Min:  0, Max: 100,
		},
		{
			ID: "s2", Type: QuestionScale,
			Text: "Da 0 a 100, quanto dipendi dal tuo canale di acquisizione principale?",
			Min:  0, Max: 100,
		},
		{
			ID: "m1", Type: QuestionMulti,
			Text: "Quali canali presidi attivamente?",
			Options: []string{
				"Social organico",
				"Advertising a pagamento",
				"Email marketing",
				"SEO e contenuti",
				"Eventi e partnership",
				"Referral strutturato",
			},
		},
		{
			ID: "m2", Type: QuestionMulti,
			Text: "Quali temi vorresti approfondire di più?",
			Options: []string{
				"Strategia e posizionamento",
				"Processi e automazione",
				"Psicologia e persuasione",
				"Dati e misurazione",
			},
		},
	}
}

// FindQuestion looks up a question by id.
func FindQuestion(questions []Question, id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
