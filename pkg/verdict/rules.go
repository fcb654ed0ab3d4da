package verdict

import "github.com/diagnostica/diagnostica/pkg/assessment"

// Question ids the default rules read. They match the default
// questionnaire in pkg/assessment.
const (
	qFunnel        = "d2" // sales path structure, options 0-3
	qAnalysis      = "d4" // data analysis frequency, options 0-3
	qCAC           = "d6" // customer acquisition cost knowledge, 0 = unknown
	qRetention     = "d7" // post-purchase follow-through, options 0-3
	qAutomation    = "d8" // automation level, options 0-3
	qDocumentation = "d9" // process documentation, options 0-3
	qDifferent     = "s1" // perceived differentiation, 0-100
	qChannelDep    = "s2" // main-channel dependence, 0-100
)

func singleBelow(qid string, threshold int) func(assessment.AnswerMap) bool {
	return func(a assessment.AnswerMap) bool {
		v, ok := a.Single(qid)
		return ok && v < threshold
	}
}

func singleEquals(qid string, value int) func(assessment.AnswerMap) bool {
	return func(a assessment.AnswerMap) bool {
		v, ok := a.Single(qid)
		return ok && v == value
	}
}

func singleAbove(qid string, threshold int) func(assessment.AnswerMap) bool {
	return func(a assessment.AnswerMap) bool {
		v, ok := a.Single(qid)
		return ok && v > threshold
	}
}

func singleAtLeast(qid string, value int) func(assessment.AnswerMap) bool {
	return func(a assessment.AnswerMap) bool {
		v, ok := a.Single(qid)
		return ok && v >= value
	}
}

func singleAtMost(qid string, value int) func(assessment.AnswerMap) bool {
	return func(a assessment.AnswerMap) bool {
		v, ok := a.Single(qid)
		return ok && v <= value
	}
}

func all(conds ...func(assessment.AnswerMap) bool) func(assessment.AnswerMap) bool {
	return func(a assessment.AnswerMap) bool {
		for _, c := range conds {
			if !c(a) {
				return false
			}
		}
		return true
	}
}

// DefaultRules returns the production diagnosis rules in evaluation order.
// Earlier rules take precedence; the final rule is the mandatory total
// fallback.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:        "posizionamento-invisibile",
			Condition: singleBelow(qDifferent, 40),
			Verdict:   "Il tuo problema non è il traffico, è il posizionamento",
			Explanation: "Ti percepisci poco diverso dai concorrenti, e il mercato ti " +
				"vede ancora più simile di quanto pensi. Finché sei interscambiabile, " +
				"ogni euro speso in acquisizione rende meno di quanto potrebbe: chi " +
				"arriva ti confronta solo sul prezzo.",
			TensionAxes: []TensionAxis{
				{
					Name:           "Differenziazione",
					LeftLabel:      "Uguale a tutti",
					RightLabel:     "Inconfondibile",
					UserPosition:   35,
					MarketPosition: 20,
					Insight: "Quando l'offerta sembra identica alle altre, il mercato " +
						"sceglie col prezzo.",
				},
				{
					Name:           "Leva competitiva",
					LeftLabel:      "Prezzo più basso",
					RightLabel:     "Valore percepito",
					UserPosition:   45,
					MarketPosition: 25,
					Insight: "Competere sul prezzo erode i margini che servirebbero " +
						"proprio a differenziarti.",
				},
			},
		},
		{
			ID: "navigazione-a-vista",
			Condition: all(
				singleEquals(qCAC, 0),
				singleAtMost(qAnalysis, 1),
			),
			Verdict: "Stai guidando senza cruscotto",
			Explanation: "Non conosci il costo di acquisizione e guardi i dati solo " +
				"quando qualcosa va storto. Ogni decisione di budget è una scommessa: " +
				"potresti star pagando i clienti più di quanto valgono senza saperlo.",
			TensionAxes: []TensionAxis{
				{
					Name:           "Consapevolezza dei numeri",
					LeftLabel:      "Vado a sensazione",
					RightLabel:     "Decido sui dati",
					UserPosition:   50,
					MarketPosition: 15,
					Insight: "Chi investe senza misurare di solito sovrastima i propri " +
						"risultati.",
				},
				{
					Name:           "Controllo del budget",
					LeftLabel:      "Spesa alla cieca",
					RightLabel:     "Ogni euro tracciato",
					UserPosition:   40,
					MarketPosition: 10,
					Insight: "Il primo numero da conoscere è quanto ti costa un " +
						"cliente nuovo.",
				},
			},
		},
		{
			ID:        "cac-sconosciuto",
			Condition: singleEquals(qCAC, 0),
			Verdict:   "Acquisti clienti a scatola chiusa",
			Explanation: "Il resto del quadro regge, ma il costo di acquisizione ti è " +
				"sconosciuto. È il numero che separa la crescita sostenibile da quella " +
				"che brucia cassa: senza, non puoi sapere quale canale merita budget.",
			TensionAxes: []TensionAxis{
				{
					Name:           "Costo di acquisizione",
					LeftLabel:      "Sconosciuto",
					RightLabel:     "Monitorato per canale",
					UserPosition:   55,
					MarketPosition: 20,
					Insight: "Un canale che sembra funzionare può essere quello che " +
						"perde di più.",
				},
			},
		},
		{
			ID:        "monocanale",
			Condition: singleAbove(qChannelDep, 70),
			Verdict:   "La tua crescita poggia su un solo pilastro",
			Explanation: "Più di due terzi dei tuoi clienti arrivano da un unico canale. " +
				"Basta un cambio di algoritmo, un aumento dei costi pubblicitari o un " +
				"competitor aggressivo per fermare tutto in una settimana.",
			TensionAxes: []TensionAxis{
				{
					Name:           "Solidità dell'acquisizione",
					LeftLabel:      "Un solo canale",
					RightLabel:     "Portafoglio di canali",
					UserPosition:   60,
					MarketPosition: 25,
					Insight: "La dipendenza da un canale si nota solo quando il canale " +
						"smette di funzionare.",
				},
				{
					Name:           "Potere negoziale",
					LeftLabel:      "Subisco le piattaforme",
					RightLabel:     "Controllo i miei canali",
					UserPosition:   50,
					MarketPosition: 30,
					Insight: "Email e referral sono gli unici canali che nessuno può " +
						"spegnerti.",
				},
			},
		},
		{
			ID: "secchio-bucato",
			Condition: all(
				singleAtMost(qFunnel, 1),
				singleAtMost(qRetention, 1),
			),
			Verdict: "Stai riempiendo un secchio bucato",
			Explanation: "Il percorso di vendita non è strutturato e dopo il primo " +
				"acquisto non succede quasi nulla. I contatti che generi si perdono " +
				"due volte: prima di comprare e subito dopo. Sistemare la tenuta vale " +
				"più di qualsiasi nuovo canale.",
			TensionAxes: []TensionAxis{
				{
					Name:           "Tenuta del funnel",
					LeftLabel:      "I contatti si perdono",
					RightLabel:     "Percorso che trattiene",
					UserPosition:   45,
					MarketPosition: 20,
					Insight: "Portare più traffico in un funnel che perde amplifica " +
						"la perdita, non i ricavi.",
				},
				{
					Name:           "Valore del cliente nel tempo",
					LeftLabel:      "Solo primo acquisto",
					RightLabel:     "Clienti che ritornano",
					UserPosition:   40,
					MarketPosition: 15,
					Insight: "Rivendere a un cliente esistente costa una frazione di " +
						"acquisirne uno nuovo.",
				},
			},
		},
		{
			ID: "automazione-fragile",
			Condition: all(
				singleAtLeast(qAutomation, 2),
				singleAtMost(qDocumentation, 1),
			),
			Verdict: "Automazione veloce su fondamenta fragili",
			Explanation: "Hai automatizzato parecchio, ma i processi vivono solo negli " +
				"strumenti e nella tua testa. Quando un flusso si rompe o cambia una " +
				"piattaforma, nessuno sa ricostruire il perché delle cose.",
			TensionAxes: []TensionAxis{
				{
					Name:           "Solidità dei processi",
					LeftLabel:      "Tutto nella mia testa",
					RightLabel:     "Processi documentati",
					UserPosition:   65,
					MarketPosition: 35,
					Insight: "Un'automazione non documentata è un processo manuale che " +
						"si è nascosto meglio.",
				},
			},
		},
		{
			ID: "pronto-a-scalare",
			Condition: all(
				singleAtLeast(qFunnel, 2),
				singleAtLeast(qAnalysis, 2),
				singleAtLeast(qCAC, 2),
			),
			Verdict: "Fondamenta solide: è il momento di scalare",
			Explanation: "Percorso di vendita strutturato, dati sotto controllo, costi " +
				"di acquisizione noti. Hai quello che serve per aumentare il budget " +
				"con metodo: il rischio adesso non è sbagliare, è andare troppo piano.",
			TensionAxes: []TensionAxis{
				{
					Name:           "Prontezza alla crescita",
					LeftLabel:      "Consolidare ancora",
					RightLabel:     "Accelerare ora",
					UserPosition:   55,
					MarketPosition: 75,
					Insight: "Chi ha i numeri sotto controllo di solito scala più " +
						"tardi di quanto potrebbe.",
				},
			},
		},
		{
			ID:        "quadro-misto",
			Condition: func(assessment.AnswerMap) bool { return true },
			Verdict:   "Un quadro a luci e ombre",
			Explanation: "Nessun problema domina sugli altri: alcune aree funzionano, " +
				"altre restano indietro. Il rischio tipico di questa fase è migliorare " +
				"un po' ovunque senza cambiare davvero nulla. Scegli un fronte solo e " +
				"portalo a livello del migliore.",
			TensionAxes: []TensionAxis{
				{
					Name:           "Focalizzazione",
					LeftLabel:      "Un po' di tutto",
					RightLabel:     "Una priorità chiara",
					UserPosition:   45,
					MarketPosition: 70,
					Insight: "I progressi visibili arrivano quando lo sforzo smette " +
						"di disperdersi.",
				},
			},
		},
	}
}
