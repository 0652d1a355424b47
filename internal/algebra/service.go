package algebra

import "strings"

// Service is a SPARQL SERVICE block: a group pattern bound to a single
// federation member (Endpoint), annotated with the source-selection metadata
// (Datasource, Rdfmts, Stars, StarFilters) a federator attaches during query
// decomposition. Grounded on pysparql.Service.
type Service struct {
	Endpoint string
	Triples  []Node

	Datasource  string
	Rdfmts      []string
	Stars       map[string][]Node
	StarFilters map[string][]*Filter

	Filters []*Filter
	Limit   int

	// FilterNested accumulates filter-expression text pushed down from an
	// enclosing NestedLoopOptional/join operator (see InstantiateFilter);
	// it is not SPARQL syntax, just opaque text carried for the physical
	// operator layer to act on.
	FilterNested []string

	// TranslatedQuery, once set, is rendered verbatim by Show in place of
	// re-serializing Triples/Filters — the slot a SQL-backed source's
	// translated query text occupies after RML translation.
	TranslatedQuery string
}

// NewService builds a Service with Limit defaulted to -1 (no limit), as
// pysparql.Service's constructor default does.
func NewService(endpoint string, triples []Node, datasource string, rdfmts []string, stars map[string][]Node, filters []*Filter, starFilters map[string][]*Filter) *Service {
	return &Service{
		Endpoint:    endpoint,
		Triples:     triples,
		Datasource:  datasource,
		Rdfmts:      rdfmts,
		Stars:       stars,
		StarFilters: starFilters,
		Filters:     filters,
		Limit:       -1,
	}
}

// IncludeFilter appends f to Filters in place — a legitimate mutator, unlike
// Instantiate/InstantiateFilter which must never mutate their receiver.
func (s *Service) IncludeFilter(f *Filter) {
	s.Filters = append(s.Filters, f)
}

// Merge extends s's Triples/Filters/FilterNested with other's, and raises
// s.Limit to other's if other's is larger. Grounded on pysparql.Service.__add__,
// a legitimate in-place combinator used while assembling a Service from
// several triples sharing an endpoint.
func (s *Service) Merge(other *Service) {
	s.Triples = append(s.Triples, other.Triples...)
	s.Filters = append(s.Filters, other.Filters...)
	s.FilterNested = append(s.FilterNested, other.FilterNested...)
	if other.Limit > s.Limit {
		s.Limit = other.Limit
	}
}

// Less implements the constants-position tie-break cascade
// pysparql.Service.__lt__ uses to order Services for join planning: more
// constant subject+predicate positions sorts first, then more constant
// subjects, then more constant object+predicate positions, then more
// constant objects, then (on a subject tie) predicate/object constant
// counts, and finally falls back to raw constant percentage/count. This is a
// strict weak ordering over the (const_subjects, const_predicates,
// const_objects, places) tuple, not a total order on arbitrary Services.
func (s *Service) Less(other *Service) bool {
	sSP := s.ConstSubjects() + s.ConstPredicates()
	oSP := other.ConstSubjects() + other.ConstPredicates()
	if oSP > sSP {
		return false
	}
	if oSP < sSP {
		return true
	}
	if other.ConstSubjects() > s.ConstSubjects() {
		return false
	}
	if other.ConstSubjects() < s.ConstSubjects() {
		return true
	}

	sOP := s.ConstObjects() + s.ConstPredicates()
	oOP := other.ConstObjects() + other.ConstPredicates()
	if oOP > sOP {
		return false
	}
	if oOP < sOP {
		return true
	}
	if other.ConstObjects() > s.ConstObjects() {
		return false
	}
	if other.ConstObjects() < s.ConstObjects() {
		return true
	}

	if other.ConstSubjects() == s.ConstSubjects() {
		if other.ConstPredicates() > s.ConstPredicates() {
			return false
		}
		if other.ConstPredicates() < s.ConstPredicates() {
			return true
		}
		if other.ConstObjects() > s.ConstObjects() {
			return false
		}
		if other.ConstObjects() < s.ConstObjects() {
			return true
		}
	}

	if other.ConstantPercentage() == s.ConstantPercentage() {
		return s.ConstantNumber() > other.ConstantNumber()
	}

	return s.ConstantPercentage() > other.ConstantPercentage()
}

func (s *Service) GetVars() []string {
	var vars []string
	for _, t := range s.Triples {
		vars = append(vars, t.GetVars()...)
	}
	return vars
}

func (s *Service) GetConsts() []string {
	var consts []string
	for _, t := range s.Triples {
		consts = append(consts, t.GetConsts()...)
	}
	return consts
}

func (s *Service) GetPredVars() []string {
	var vars []string
	for _, t := range s.Triples {
		vars = append(vars, t.GetPredVars()...)
	}
	return vars
}

func (s *Service) Places() int {
	p := 0
	for _, t := range s.Triples {
		p += t.Places()
	}
	return p
}

func (s *Service) ConstSubjects() int {
	c := 0
	for _, t := range s.Triples {
		c += t.ConstSubjects()
	}
	return c
}

func (s *Service) ConstObjects() int {
	c := 0
	for _, t := range s.Triples {
		c += t.ConstObjects()
	}
	return c
}

func (s *Service) ConstPredicates() int {
	c := 0
	for _, t := range s.Triples {
		c += t.ConstPredicates()
	}
	return c
}

func (s *Service) ConstantNumber() int {
	c := 0
	for _, t := range s.Triples {
		c += t.ConstantNumber()
	}
	return c
}

func (s *Service) ConstantPercentage() float64 {
	return constantPercentage(s.ConstantNumber(), s.Places())
}

func (s *Service) AllTriplesGeneral() bool {
	for _, t := range s.Triples {
		if !t.AllTriplesGeneral() {
			return false
		}
	}
	return true
}

// AllTriplesLowSelectivity reports low selectivity if every triple does, OR
// the Service carries any scoped Filters — a non-empty filter list is
// treated as boosting selectivity enough to short-circuit true.
func (s *Service) AllTriplesLowSelectivity() bool {
	allLow := true
	for _, t := range s.Triples {
		allLow = allLow && t.AllTriplesLowSelectivity()
	}
	return allLow || len(s.Filters) > 0
}

func (s *Service) SetGeneral(prefixes map[string]string, generalPreds []string) {
	for _, t := range s.Triples {
		t.SetGeneral(prefixes, generalPreds)
	}
}

// Instantiate returns a fresh Service with every Triple instantiated against
// bindings; every other field is carried over unchanged. Never mutates s —
// unlike the source this is grounded on, which instantiates Triples in
// place and returns self.
func (s *Service) Instantiate(bindings map[string]string) Node {
	triples := make([]Node, len(s.Triples))
	for i, t := range s.Triples {
		triples[i] = t.Instantiate(bindings)
	}
	return s.withTriples(triples)
}

// InstantiateFilter returns a fresh Service like Instantiate, but with
// filterStr appended to FilterNested rather than discarded — the filter text
// a NestedLoopOptional pushes down into a still-unexecuted remote branch.
func (s *Service) InstantiateFilter(bindings map[string]string, filterStr string) Node {
	triples := make([]Node, len(s.Triples))
	for i, t := range s.Triples {
		triples[i] = t.InstantiateFilter(bindings, filterStr)
	}
	next := s.withTriples(triples)
	next.FilterNested = append(append([]string{}, s.FilterNested...), filterStr)
	return next
}

// withTriples returns a shallow copy of s with Triples replaced.
func (s *Service) withTriples(triples []Node) *Service {
	return &Service{
		Endpoint:        s.Endpoint,
		Triples:         triples,
		Datasource:      s.Datasource,
		Rdfmts:          s.Rdfmts,
		Stars:           s.Stars,
		StarFilters:     s.StarFilters,
		Filters:         s.Filters,
		Limit:           s.Limit,
		FilterNested:    s.FilterNested,
		TranslatedQuery: s.TranslatedQuery,
	}
}

// Show renders the translated query verbatim if present, else re-serializes
// Triples and Filters nested one level deeper.
func (s *Service) Show(indent string) string {
	if s.TranslatedQuery != "" {
		return indent + "SERVICE <" + s.Endpoint + "> { \n" + s.TranslatedQuery + "\n" + indent + "}"
	}
	var parts []string
	for _, t := range s.Triples {
		parts = append(parts, t.Show(indent+"    "))
	}
	triplesStr := strings.Join(parts, " . \n")

	var filterParts []string
	for _, f := range s.Filters {
		filterParts = append(filterParts, f.Show(indent+"    "))
	}
	filtersStr := strings.Join(filterParts, " . \n")
	for _, fn := range s.FilterNested {
		filtersStr += "  \n" + fn
	}

	return indent + "SERVICE <" + s.Endpoint + "> { \n" + triplesStr + filtersStr + "\n" + indent + "}"
}
