package notation

import "github.com/alecthomas/participle/v2/lexer"

// TemplateLexer tokenizes a notation template declaration: the keyword
// `notation`, a name, `=`, and a right-hand template made of `%N`
// metavariable placeholders, bare identifiers (nullary symbols), `->`,
// and parentheses for grouping.
var TemplateLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Whitespace", `[ \t\r\n]+`, nil},
		{"Arrow", `->`, nil},
		{"Percent", `%`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Punct", `[=(){}]`, nil},
	},
})
