package recommend

// DefaultClusters returns the editorial sentences keyed by
// "{maturity}_{primaryDomain}". When a key is present, the sentence is
// prefixed to the entry's own rendered reason. Not every combination has a
// sentence; missing keys simply skip the prefix.
func DefaultClusters() map[string]string {
	return map[string]string{
		"Novice_acq": "Stai muovendo i primi passi sull'acquisizione: meglio un canale " +
			"presidiato bene che cinque lasciati a metà.",
		"Novice_conv": "Prima di portare più traffico, assicurati che chi arriva " +
			"compri davvero.",
		"Novice_sist": "Hai un'inclinazione naturale per l'ordine: sfruttala per " +
			"costruire basi solide fin da subito.",
		"Practitioner_acq": "I tuoi canali funzionano: ora serve capire quali " +
			"meritano più budget e quali vanno chiusi.",
		"Practitioner_conv": "Il tuo funnel converte: il prossimo salto è renderlo " +
			"prevedibile e misurabile fase per fase.",
		"Practitioner_sist": "I tuoi processi reggono: è il momento di farli girare " +
			"senza il tuo intervento costante.",
		"Advanced_acq": "Acquisisci con metodo: la leva ora è l'efficienza, non il " +
			"volume.",
		"Advanced_sist": "Il tuo sistema è maturo: concentrati su ciò che lo rende " +
			"difficile da copiare.",
		"Advanced_exp": "L'esperienza cliente è il tuo moltiplicatore: ogni punto di " +
			"contatto può diventare passaparola.",
	}
}
