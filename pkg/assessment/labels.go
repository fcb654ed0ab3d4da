package assessment

var domainLabels = map[DomainKey]string{
	DomainAcquisition: "acquisizione",
	DomainConversion:  "conversione",
	DomainExperience:  "esperienza",
	DomainSystems:     "sistemi",
}

var interestLabels = map[InterestKey]string{
	InterestStrategy:   "strategia",
	InterestSystems:    "sistemi",
	InterestPsychology: "psicologia",
	InterestData:       "dati",
}

// DomainLabel returns the lowercase Italian label for a domain axis,
// falling back to the key itself for unknown values.
func DomainLabel(k DomainKey) string {
	if l, ok := domainLabels[k]; ok {
		return l
	}
	return string(k)
}

// InterestLabel returns the lowercase Italian label for an interest axis.
func InterestLabel(k InterestKey) string {
	if l, ok := interestLabels[k]; ok {
		return l
	}
	return string(k)
}
