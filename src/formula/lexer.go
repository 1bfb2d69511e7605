package formula

import (
	"github.com/samber/lo"
)

// symbol is a significant character together with its rune offset in the
// original expression.
type symbol struct {
	char   rune
	offset int
}

// lex drops the spaces from the expression. Nothing else is special here;
// tabs, digits and punctuation all reach the parser unchanged.
func lex(expression string) []symbol {
	symbols := lo.Map([]rune(expression), func(char rune, i int) symbol {
		return symbol{char: char, offset: i}
	})
	return lo.Filter(symbols, func(s symbol, _ int) bool {
		return s.char != ' '
	})
}
