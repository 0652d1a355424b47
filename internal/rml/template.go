package rml

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var templateLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Text", Pattern: `[^{}]+`},
})

// templateAST is the top-level parse: an alternating run of literal text and
// {column} placeholders, in source order.
type templateAST struct {
	Parts []*templatePartAST `parser:"@@*"`
}

// templatePartAST is either a {column} placeholder or a run of literal text.
// The lexer tries Ident before Text, so literal text that starts with a
// letter ("http") arrives as an Ident token; Literal accepts both, and
// splitTemplate concatenates consecutive literal parts.
type templatePartAST struct {
	Column  *string `parser:"( \"{\" @Ident \"}\""`
	Literal *string `parser:"| @(Text | Ident) )"`
}

var templateParser = participle.MustBuild[templateAST](
	participle.Lexer(templateLexer),
)

// TemplateSegment is one (prefix, column) pair of a split RML template, per
// term_map.py::TermMap2SQL.get_sql_term's temp_split. A segment with
// HasColumn false carries only trailing literal text with no following
// placeholder.
type TemplateSegment struct {
	Prefix    string
	Column    string
	HasColumn bool
}

// splitTemplate parses an RML TEMPLATE string ("http://ex/City/{name}") into
// its (prefix, column) segment pairs, grounded on the teacher's
// lexer.MustSimple + participle.MustBuild[T] grammar pattern
// (internal/dsl/grammar.go), generalized to this domain's tiny template
// mini-language instead of a DSL of graph commands.
func splitTemplate(template string) ([]TemplateSegment, error) {
	ast, err := templateParser.ParseString("", template)
	if err != nil {
		return nil, malformedTemplate(template, err.Error())
	}

	var segments []TemplateSegment
	pendingPrefix := ""
	for _, part := range ast.Parts {
		switch {
		case part.Column != nil:
			segments = append(segments, TemplateSegment{
				Prefix:    pendingPrefix,
				Column:    *part.Column,
				HasColumn: true,
			})
			pendingPrefix = ""
		case part.Literal != nil:
			pendingPrefix += *part.Literal
		}
	}
	if pendingPrefix != "" {
		segments = append(segments, TemplateSegment{Prefix: pendingPrefix})
	}
	return segments, nil
}
