package notation

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

func buildParser() *participle.Parser[Decl] {
	p, err := participle.Build[Decl](
		participle.Lexer(TemplateLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(3),
	)
	if err != nil {
		panic(err)
	}
	return p
}

var parser = buildParser()

// ParseString parses a single `notation name = template` declaration from
// source.
func ParseString(name, source string) (*Decl, error) {
	decl, err := parser.ParseString(name, source)
	if err != nil {
		return nil, fmt.Errorf("notation: %w", err)
	}
	return decl, nil
}
