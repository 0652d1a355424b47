package algebra

// Optional wraps a basic graph-pattern group (Bgg) as a SPARQL OPTIONAL
// block: every statistic and transform delegates straight to Bgg. Grounded
// on pysparql.Optional.
type Optional struct {
	Bgg Node
}

// NewOptional wraps bgg as an Optional.
func NewOptional(bgg Node) *Optional {
	return &Optional{Bgg: bgg}
}

func (o *Optional) GetVars() []string     { return o.Bgg.GetVars() }
func (o *Optional) GetConsts() []string   { return o.Bgg.GetConsts() }
func (o *Optional) GetPredVars() []string { return o.Bgg.GetPredVars() }
func (o *Optional) Places() int           { return o.Bgg.Places() }

func (o *Optional) ConstantNumber() int { return o.Bgg.ConstantNumber() }
func (o *Optional) ConstantPercentage() float64 {
	return constantPercentage(o.ConstantNumber(), o.Places())
}

func (o *Optional) ConstSubjects() int   { return o.Bgg.ConstSubjects() }
func (o *Optional) ConstObjects() int    { return o.Bgg.ConstObjects() }
func (o *Optional) ConstPredicates() int { return o.Bgg.ConstPredicates() }

func (o *Optional) AllTriplesGeneral() bool       { return o.Bgg.AllTriplesGeneral() }
func (o *Optional) AllTriplesLowSelectivity() bool { return o.Bgg.AllTriplesLowSelectivity() }

func (o *Optional) SetGeneral(prefixes map[string]string, generalPreds []string) {
	o.Bgg.SetGeneral(prefixes, generalPreds)
}

func (o *Optional) Instantiate(bindings map[string]string) Node {
	return &Optional{Bgg: o.Bgg.Instantiate(bindings)}
}

func (o *Optional) InstantiateFilter(bindings map[string]string, filterStr string) Node {
	return &Optional{Bgg: o.Bgg.InstantiateFilter(bindings, filterStr)}
}

// Show renders "indent OPTIONAL {\n  bgg\nindent}".
func (o *Optional) Show(indent string) string {
	return indent + "OPTIONAL {\n" + o.Bgg.Show(indent+"  ") + "\n" + indent + "}"
}
