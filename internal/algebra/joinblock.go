package algebra

// JoinBlock is a conjunctive group of elements (triples, nested blocks,
// services, optionals) joined by SPARQL's implicit "." operator, plus any
// FILTER clauses scoped to the group. Grounded on pysparql.JoinBlock.
type JoinBlock struct {
	Elements   []Node
	Filters    []*Filter
	FiltersStr string
}

// NewJoinBlock builds a JoinBlock from its elements and scoped filters.
func NewJoinBlock(elements []Node, filters []*Filter) *JoinBlock {
	return &JoinBlock{Elements: elements, Filters: filters}
}

func (j *JoinBlock) SetGeneral(prefixes map[string]string, generalPreds []string) {
	for _, e := range j.Elements {
		e.SetGeneral(prefixes, generalPreds)
	}
}

func (j *JoinBlock) AllTriplesGeneral() bool {
	for _, e := range j.Elements {
		if !e.AllTriplesGeneral() {
			return false
		}
	}
	return true
}

func (j *JoinBlock) AllTriplesLowSelectivity() bool {
	for _, e := range j.Elements {
		if !e.AllTriplesLowSelectivity() {
			return false
		}
	}
	return true
}

// Show concatenates each element's rendering with ". " between non-empty
// ones, then appends every scoped filter's rendering. Grounded on
// pysparql.JoinBlock.show.
func (j *JoinBlock) Show(indent string) string {
	body := ""
	for _, e := range j.Elements {
		s := e.Show(indent)
		if body != "" {
			body += ". " + s
		} else {
			body += " " + s
		}
	}
	for _, f := range j.Filters {
		body += f.Show(indent)
	}
	return body
}

func (j *JoinBlock) Instantiate(bindings map[string]string) Node {
	elems := make([]Node, len(j.Elements))
	for i, e := range j.Elements {
		elems[i] = e.Instantiate(bindings)
	}
	return &JoinBlock{Elements: elems, Filters: j.Filters}
}

func (j *JoinBlock) InstantiateFilter(bindings map[string]string, filterStr string) Node {
	elems := make([]Node, len(j.Elements))
	for i, e := range j.Elements {
		elems[i] = e.InstantiateFilter(bindings, filterStr)
	}
	return &JoinBlock{Elements: elems, Filters: j.Filters, FiltersStr: filterStr}
}

func (j *JoinBlock) GetVars() []string {
	var vars []string
	for _, e := range j.Elements {
		vars = append(vars, e.GetVars()...)
	}
	return vars
}

func (j *JoinBlock) GetConsts() []string {
	var consts []string
	for _, e := range j.Elements {
		consts = append(consts, e.GetConsts()...)
	}
	return consts
}

func (j *JoinBlock) GetPredVars() []string {
	var vars []string
	for _, e := range j.Elements {
		vars = append(vars, e.GetPredVars()...)
	}
	return vars
}

// IncludeFilter pushes f into every *Service element via Service.IncludeFilter;
// all other elements, nested blocks included, are left untouched (a
// legitimate in-place mutator, per the Lifetimes note that
// SetGeneral/IncludeFilter remain mutating while Instantiate/InstantiateFilter
// must not).
func (j *JoinBlock) IncludeFilter(f *Filter) {
	for _, e := range j.Elements {
		if s, ok := e.(*Service); ok {
			s.IncludeFilter(f)
		}
	}
}

func (j *JoinBlock) Places() int {
	p := 0
	for _, e := range j.Elements {
		p += e.Places()
	}
	return p
}

func (j *JoinBlock) ConstSubjects() int {
	c := 0
	for _, e := range j.Elements {
		c += e.ConstSubjects()
	}
	return c
}

func (j *JoinBlock) ConstObjects() int {
	c := 0
	for _, e := range j.Elements {
		c += e.ConstObjects()
	}
	return c
}

func (j *JoinBlock) ConstPredicates() int {
	c := 0
	for _, e := range j.Elements {
		c += e.ConstPredicates()
	}
	return c
}

func (j *JoinBlock) ConstantNumber() int {
	c := 0
	for _, e := range j.Elements {
		c += e.ConstantNumber()
	}
	return c
}

func (j *JoinBlock) ConstantPercentage() float64 {
	return constantPercentage(j.ConstantNumber(), j.Places())
}
