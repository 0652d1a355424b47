package rml

import (
	"strings"

	"github.com/awudima/fedcore/internal/rml/sql"
	"github.com/awudima/fedcore/internal/term"
)

// ResultTemplate is the lexical "type"/"value" pair a translated term
// contributes to the SPARQL-results JSON shape, per
// term_map.py::TermMap2SQL's sparql_result_template.
type ResultTemplate struct {
	Type  string
	Value string
}

// Result is the triple a TermMap×Argument translation produces.
type Result struct {
	Term             sql.Expr
	FilterConditions *sql.AndCondition
	Projection       *sql.SelectExpression
	ResultTemplate    ResultTemplate
}

// Translate translates tm against rdfTerm using comparisonOp (default "="
// when empty) as the constant-vs-constant comparison operator, grounded on
// term_map.py::TermMap2SQL.__init__/_process_term_map.
func Translate(tm TermMap, rdfTerm term.Argument, comparisonOp string) (Result, error) {
	if comparisonOp == "" {
		comparisonOp = "="
	}

	sqlTerm, tmpl, err := getSQLTerm(tm)
	if err != nil {
		return Result{}, err
	}

	if rdfTerm.Constant {
		cond, err := filterCondition(tm, sqlTerm, tmpl, rdfTerm, comparisonOp)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Term:             sqlTerm,
			FilterConditions: cond,
			ResultTemplate:   ResultTemplate{},
		}, nil
	}

	bound, err := boundColumns(tm)
	if err != nil {
		return Result{}, err
	}
	var proj *sql.SelectExpression
	if sqlTerm != nil {
		proj = sql.NewSelectExpression(sqlTerm, strings.TrimLeft(rdfTerm.Name, "?$"))
	}

	return Result{
		Term:             sqlTerm,
		FilterConditions: bound,
		Projection:       proj,
		ResultTemplate:   tmpl,
	}, nil
}

// getSQLTerm builds the SQL term expression plus the lexical result
// template for tm, dispatching on ResourceType. Grounded on
// term_map.py::TermMap2SQL.get_sql_term.
func getSQLTerm(tm TermMap) (sql.Expr, ResultTemplate, error) {
	switch tm.ResourceType {
	case Template:
		return templateTerm(tm)
	case Reference:
		return referenceTerm(tm)
	default:
		return constantTerm(tm)
	}
}

func templateTerm(tm TermMap) (sql.Expr, ResultTemplate, error) {
	segs, err := splitTemplate(tm.Value)
	if err != nil {
		return nil, ResultTemplate{}, err
	}

	rt := ResultTemplate{Type: "uri"}

	if len(segs) == 0 {
		return nil, rt, nil
	}

	if tm.Type == BNode {
		segs[0].Prefix = "_:" + segs[0].Prefix
		rt.Type = "bnode"
	}

	expr := expandExpr(segs)
	term := termFromExpr(expr, columnsOf(segs), tm)
	return term, rt, nil
}

func referenceTerm(tm TermMap) (sql.Expr, ResultTemplate, error) {
	switch tm.Type {
	case BNode:
		segs := []TemplateSegment{{Prefix: "_:", Column: tm.Value, HasColumn: true}}
		expr := expandExpr(segs)
		return termFromExpr(expr, columnsOf(segs), tm), ResultTemplate{Type: "bnode"}, nil
	case IRI:
		return sql.NewColumn(tm.Value, tm.TableAlias, tm.Schema), ResultTemplate{Type: "uri"}, nil
	default:
		return sql.NewColumn(tm.Value, tm.TableAlias, tm.Schema), ResultTemplate{Type: "literal"}, nil
	}
}

func constantTerm(tm TermMap) (sql.Expr, ResultTemplate, error) {
	rt := ResultTemplate{Value: tm.Value}
	switch tm.Type {
	case BNode:
		rt.Type = "bnode"
	case Literal:
		rt.Type = "literal"
	default:
		rt.Type = "uri"
	}
	return nil, rt, nil
}

// expandExpr renders each segment as SQL-literal text, matching
// term_map.py::TermMap2SQL.get_expr: a (prefix,column) pair with a non-empty
// prefix emits a quoted literal then the backtick-quoted column; a
// (prefix,column) pair with an empty prefix emits only the column; a
// trailing prefix-only segment emits a quoted literal.
func expandExpr(segs []TemplateSegment) []string {
	var expr []string
	for _, s := range segs {
		switch {
		case s.HasColumn && s.Prefix != "":
			expr = append(expr, "'"+s.Prefix+"'", "`"+s.Column+"`")
		case s.HasColumn:
			expr = append(expr, "`"+s.Column+"`")
		default:
			expr = append(expr, "'"+s.Prefix+"'")
		}
	}
	return expr
}

func columnsOf(segs []TemplateSegment) []string {
	var cols []string
	for _, s := range segs {
		if s.HasColumn {
			cols = append(cols, s.Column)
		}
	}
	return cols
}

// termFromExpr wraps expr as a CONCAT function when it has more than one
// piece, else as a bare column reference over the first piece — matching
// get_sql_term's "len(expr) > 1" branch.
func termFromExpr(expr []string, cols []string, tm TermMap) sql.Expr {
	if len(expr) == 0 {
		return nil
	}
	if len(expr) > 1 {
		columns := make([]*sql.Column, len(cols))
		for i, c := range cols {
			columns[i] = sql.NewColumn(c, tm.TableAlias, tm.Schema)
		}
		return sql.NewFunction("CONCAT", expr, columns)
	}
	return sql.NewColumn(expr[0], tm.TableAlias, tm.Schema)
}

// boundColumns produces an AndCondition requiring every column tm
// references to be NOT NULL — the "treat every column in a conjunctive BGP
// translation as bound" rule. Grounded on
// term_map.py::TermMap2SQL.get_bound_columns.
func boundColumns(tm TermMap) (*sql.AndCondition, error) {
	cols, err := tm.Columns()
	if err != nil {
		return nil, err
	}
	conds := make([]*sql.Condition, len(cols))
	for i, c := range cols {
		conds[i] = sql.NewCondition(sql.NewColumn(c, tm.TableAlias, tm.Schema), " IS NOT ", "NULL")
	}
	return sql.NewAndCondition(conds), nil
}

// filterCondition produces the filter comparing tm's term against rdfTerm's
// constant lexical value, short-circuiting to a trivial condition when tm is
// itself constant (CONSTANT-vs-CONSTANT), per
// term_map.py::TermMap2SQL.get_filter_condition.
func filterCondition(tm TermMap, sqlTerm sql.Expr, tmpl ResultTemplate, rdfTerm term.Argument, comparisonOp string) (*sql.AndCondition, error) {
	value := rdfTerm.Name
	if tm.Type != BNode {
		value = requote(value)
	}

	if sqlTerm != nil {
		return sql.NewAndCondition([]*sql.Condition{
			sql.NewCondition(sqlTerm, comparisonOp, value),
		}), nil
	}

	if comparisonOp == "=" {
		constValue := tmpl.Value
		if tm.Type != BNode {
			constValue = requote(constValue)
		}
		if constValue == value {
			return nil, nil
		}
		return sql.NewAndCondition([]*sql.Condition{sql.NewCondition(nil, "FALSE", "")}), nil
	}
	return sql.NewAndCondition([]*sql.Condition{
		sql.NewCondition(sql.Raw("'"+tmpl.Value+"'"), comparisonOp, value),
	}), nil
}

// requote strips an outer quote/bracket pair (", ', or <...>) from value and
// rewraps it in single quotes, matching
// term_map.py::TermMap2SQL.get_filter_condition's quoting rule.
func requote(value string) string {
	if len(value) >= 2 {
		switch value[0] {
		case '"', '\'', '<':
			return "'" + value[1:len(value)-1] + "'"
		}
	}
	return "'" + value + "'"
}
