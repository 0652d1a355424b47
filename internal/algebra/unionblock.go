package algebra

// UnionBlock is a disjunctive group of elements joined by SPARQL's UNION
// operator, plus any filters scoped across the whole union. Grounded on
// pysparql.UnionBlock.
//
// Instantiate and InstantiateFilter return a *JoinBlock* rather than a
// *UnionBlock* — preserved verbatim from the source this is grounded on,
// which does the same. Once every branch has collapsed to ground triples,
// nothing downstream distinguishes "a union of one instantiated branch" from
// "a join of its elements", so the type collapse is harmless in practice and
// changing it would diverge from the corpus this was learned from.
type UnionBlock struct {
	Elements []Node
	Filters  []*Filter
}

// NewUnionBlock builds a UnionBlock from its elements and scoped filters.
func NewUnionBlock(elements []Node, filters []*Filter) *UnionBlock {
	return &UnionBlock{Elements: elements, Filters: filters}
}

func (u *UnionBlock) SetGeneral(prefixes map[string]string, generalPreds []string) {
	for _, e := range u.Elements {
		e.SetGeneral(prefixes, generalPreds)
	}
}

func (u *UnionBlock) AllTriplesGeneral() bool {
	for _, e := range u.Elements {
		if !e.AllTriplesGeneral() {
			return false
		}
	}
	return true
}

func (u *UnionBlock) AllTriplesLowSelectivity() bool {
	for _, e := range u.Elements {
		if !e.AllTriplesLowSelectivity() {
			return false
		}
	}
	return true
}

// Show folds Elements pairwise via nest/auxShow and joins branches with
// " UNION ", then appends every scoped filter's rendering.
func (u *UnionBlock) Show(indent string) string {
	body := Nest(u.Elements, " UNION ")
	if body == "" {
		return " "
	}
	for _, f := range u.Filters {
		body += f.Show(indent)
	}
	return body
}

// Instantiate instantiates every element and returns them wrapped in a
// JoinBlock, not a UnionBlock — see the type doc comment.
func (u *UnionBlock) Instantiate(bindings map[string]string) Node {
	elems := make([]Node, len(u.Elements))
	for i, e := range u.Elements {
		elems[i] = e.Instantiate(bindings)
	}
	return &JoinBlock{Elements: elems}
}

// InstantiateFilter instantiates every element with bindings applied and
// filterStr appended to every reachable Service.FilterNested, then returns
// them wrapped in a JoinBlock carrying filterStr — same type collapse as
// Instantiate.
func (u *UnionBlock) InstantiateFilter(bindings map[string]string, filterStr string) Node {
	elems := make([]Node, len(u.Elements))
	for i, e := range u.Elements {
		elems[i] = e.InstantiateFilter(bindings, filterStr)
	}
	return &JoinBlock{Elements: elems, FiltersStr: filterStr}
}

func (u *UnionBlock) GetVars() []string {
	var vars []string
	for _, e := range u.Elements {
		vars = append(vars, e.GetVars()...)
	}
	return vars
}

func (u *UnionBlock) GetConsts() []string {
	var consts []string
	for _, e := range u.Elements {
		consts = append(consts, e.GetConsts()...)
	}
	return consts
}

func (u *UnionBlock) GetPredVars() []string {
	var vars []string
	for _, e := range u.Elements {
		vars = append(vars, e.GetPredVars()...)
	}
	return vars
}

// IncludeFilter pushes f into every *Service element; all other elements,
// nested blocks included, are left untouched (a legitimate in-place mutator;
// see JoinBlock.IncludeFilter).
func (u *UnionBlock) IncludeFilter(f *Filter) {
	for _, e := range u.Elements {
		if s, ok := e.(*Service); ok {
			s.IncludeFilter(f)
		}
	}
}

func (u *UnionBlock) Places() int {
	p := 0
	for _, e := range u.Elements {
		p += e.Places()
	}
	return p
}

func (u *UnionBlock) ConstSubjects() int {
	c := 0
	for _, e := range u.Elements {
		c += e.ConstSubjects()
	}
	return c
}

func (u *UnionBlock) ConstObjects() int {
	c := 0
	for _, e := range u.Elements {
		c += e.ConstObjects()
	}
	return c
}

func (u *UnionBlock) ConstPredicates() int {
	c := 0
	for _, e := range u.Elements {
		c += e.ConstPredicates()
	}
	return c
}

func (u *UnionBlock) ConstantNumber() int {
	c := 0
	for _, e := range u.Elements {
		c += e.ConstantNumber()
	}
	return c
}

func (u *UnionBlock) ConstantPercentage() float64 {
	return constantPercentage(u.ConstantNumber(), u.Places())
}
