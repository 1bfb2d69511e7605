package formula

import (
	"unicode"
	"unicode/utf8"
)

// endOfInput is what the lookahead reads once every symbol is consumed.
const endOfInput rune = 0

// maxDepth bounds how many of start, disjunction and conjunction may be active
// at once. Every nesting level or chained operator enters at least one of them,
// so input nested past this fails instead of exhausting the goroutine stack.
const maxDepth = 100_000

// parser is a predictive recursive-descent parser over the lexed symbols. It
// looks at one symbol at a time and never backtracks over consumed input.
//
// Grammar, lowest binding first:
//
//	start       = disjunction [ "->" start ]
//	disjunction = conjunction [ "|" disjunction ]
//	conjunction = negation [ "&" conjunction ]
//	negation    = "!" literal | literal
//	literal     = "(" start ")" | <any single character>
type parser struct {
	expression string
	symbols    []symbol
	pos        int
	depth      int
}

func newParser(expression string) *parser {
	return &parser{
		expression: expression,
		symbols:    lex(expression),
	}
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.symbols)
}

func (p *parser) current() rune {
	if p.atEnd() {
		return endOfInput
	}
	return p.symbols[p.pos].char
}

// offset is the position of the lookahead in the original expression.
func (p *parser) offset() int {
	if p.atEnd() {
		return utf8.RuneCountInString(p.expression)
	}
	return p.symbols[p.pos].offset
}

// accept consumes the lookahead if it is c. Otherwise nothing changes.
func (p *parser) accept(c rune) bool {
	if p.atEnd() || p.current() != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) fail(reason string) error {
	return NewMalformedInputError(p.expression, p.offset(), reason)
}

// enter must be paired with a deferred leave once it succeeds.
func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return p.fail("nesting too deep")
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// start parses an implication. "->" is right-associative and binds loosest.
func (p *parser) start() (*Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.disjunction()
	if err != nil {
		return nil, err
	}

	if !p.accept('-') {
		return left, nil
	}
	if !p.accept('>') {
		return nil, p.fail("expected '>' after '-'")
	}

	right, err := p.start()
	if err != nil {
		return nil, err
	}
	return newBinary(IMPLIES, left, right), nil
}

// disjunction parses "|". Once the operator is consumed the right-hand side
// must parse; there is no falling back to the left operand.
func (p *parser) disjunction() (*Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.conjunction()
	if err != nil {
		return nil, err
	}

	if !p.accept('|') {
		return left, nil
	}

	right, err := p.disjunction()
	if err != nil {
		return nil, err
	}
	return newBinary(OR, left, right), nil
}

func (p *parser) conjunction() (*Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.negation()
	if err != nil {
		return nil, err
	}

	if !p.accept('&') {
		return left, nil
	}

	right, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	return newBinary(AND, left, right), nil
}

func (p *parser) negation() (*Node, error) {
	if !p.accept('!') {
		return p.literal()
	}

	operand, err := p.literal()
	if err != nil {
		return nil, err
	}
	return newNegation(operand), nil
}

// literal parses a parenthesized formula or a single-character variable.
//
// The variable itself is not validated: any character is taken as long as the
// character after it is not an uppercase letter.
func (p *parser) literal() (*Node, error) {
	if p.accept('(') {
		inner, err := p.start()
		if err != nil {
			return nil, err
		}
		if !p.accept(')') {
			return nil, p.fail("expected ')'")
		}
		return inner, nil
	}

	if p.atEnd() {
		return nil, p.fail("unexpected end of input")
	}

	variable := p.current()
	p.pos++
	if unicode.IsUpper(p.current()) {
		return nil, p.fail("unexpected uppercase letter after variable")
	}

	return newLiteral(string(variable)), nil
}
