// Package assessment implements the diagnostic survey scoring core:
// answer accumulation over a score definition matrix, maturity
// classification, and dominant-axis selection.
package assessment

// DomainKey identifies one of the four business-function axes.
type DomainKey string

const (
	DomainAcquisition DomainKey = "acq"
	DomainConversion  DomainKey = "conv"
	DomainExperience  DomainKey = "exp"
	DomainSystems     DomainKey = "sist"
)

// InterestKey identifies one of the four thematic lenses.
type InterestKey string

const (
	InterestStrategy   InterestKey = "strat"
	InterestSystems    InterestKey = "sist"
	InterestPsychology InterestKey = "psy"
	InterestData       InterestKey = "dati"
)

// Maturity is the ordinal tier derived from the accumulated level scalar.
type Maturity string

const (
	MaturityNovice       Maturity = "Novice"
	MaturityPractitioner Maturity = "Practitioner"
	MaturityAdvanced     Maturity = "Advanced"
)

// DomainScores is the closed four-axis domain bucket. No keys beyond these
// four are ever introduced.
type DomainScores struct {
	Acq  int `json:"acq"`
	Conv int `json:"conv"`
	Exp  int `json:"exp"`
	Sist int `json:"sist"`
}

func (d DomainScores) add(o DomainScores) DomainScores {
	return DomainScores{
		Acq:  d.Acq + o.Acq,
		Conv: d.Conv + o.Conv,
		Exp:  d.Exp + o.Exp,
		Sist: d.Sist + o.Sist,
	}
}

// Axes returns the bucket in declaration order, which is also the tie-break
// order for dominant-axis selection.
func (d DomainScores) Axes() []Axis[DomainKey] {
	return []Axis[DomainKey]{
		{DomainAcquisition, d.Acq},
		{DomainConversion, d.Conv},
		{DomainExperience, d.Exp},
		{DomainSystems, d.Sist},
	}
}

// InterestScores is the closed four-axis interest bucket.
type InterestScores struct {
	Strat int `json:"strat"`
	Sist  int `json:"sist"`
	Psy   int `json:"psy"`
	Dati  int `json:"dati"`
}

func (n InterestScores) add(o InterestScores) InterestScores {
	return InterestScores{
		Strat: n.Strat + o.Strat,
		Sist:  n.Sist + o.Sist,
		Psy:   n.Psy + o.Psy,
		Dati:  n.Dati + o.Dati,
	}
}

// Axes returns the bucket in declaration order (tie-break order).
func (n InterestScores) Axes() []Axis[InterestKey] {
	return []Axis[InterestKey]{
		{InterestStrategy, n.Strat},
		{InterestSystems, n.Sist},
		{InterestPsychology, n.Psy},
		{InterestData, n.Dati},
	}
}

// Vector is a single answer option's score contribution.
type Vector struct {
	Level     int            `json:"liv"`
	Domains   DomainScores   `json:"dom"`
	Interests InterestScores `json:"int"`
}

// Add returns the component-wise sum of two vectors. Addition is commutative
// and associative, so accumulation order never matters.
func (v Vector) Add(o Vector) Vector {
	return Vector{
		Level:     v.Level + o.Level,
		Domains:   v.Domains.add(o.Domains),
		Interests: v.Interests.add(o.Interests),
	}
}

// Totals is the accumulated score plus the fields derived once after
// accumulation finishes. Immutable once computed.
type Totals struct {
	Level           int            `json:"liv"`
	Domains         DomainScores   `json:"dom"`
	Interests       InterestScores `json:"int"`
	Maturity        Maturity       `json:"maturity"`
	PrimaryDomain   DomainKey      `json:"primaryDomain"`
	SecondaryDomain DomainKey      `json:"secondaryDomain,omitempty"`
	PrimaryInterest InterestKey    `json:"primaryInterest"`
	// SecondaryInterest is derived for symmetry with the domain bucket but
	// nothing downstream consumes it, so it stays out of the JSON shape.
	SecondaryInterest InterestKey `json:"-"`
}
