package cql

import (
	"fmt"
	"strconv"

	"github.com/jsalva/pgnx/internal/errors"
)

// Parser turns a token stream from a Lexer into an AST. It holds one token
// of lookahead so filter-argument parsing can decide where an argument list
// ends without backtracking.
type Parser struct {
	lex  *Lexer
	tok  Token
	ahead Token
}

// NewParser builds a parser over input, primed with its first two tokens.
func NewParser(input string) *Parser {
	p := &Parser{lex: NewLexer(input)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.tok = p.ahead
	p.ahead = p.lex.NextToken()
}

// Parse compiles a CQL query string into a Node tree.
func Parse(input string) (Node, error) {
	return NewParser(input).ParseExpression()
}

// ParseExpression parses a full query: one node, or several nodes joined
// by an implicit "and".
func (p *Parser) ParseExpression() (Node, error) {
	terms, err := p.parseTerms()
	if err != nil {
		return nil, err
	}
	switch len(terms) {
	case 0:
		return nil, fmt.Errorf("empty expression: %w", errors.ErrCQLSyntax)
	case 1:
		return terms[0], nil
	default:
		return &LogicalNode{Op: "and", Children: terms}, nil
	}
}

func (p *Parser) parseTerms() ([]Node, error) {
	var terms []Node
	for p.tok.Type != EOF && p.tok.Type != RPAREN {
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}

// parseTerm parses a single top-level construct: a parenthesised
// expression, a bare filter name, a literal operand, or a bare comparison.
func (p *Parser) parseTerm() (Node, error) {
	switch p.tok.Type {
	case LPAREN:
		return p.parseParenthesised()
	case IDENT:
		return p.parseFilter()
	case PIECE, PIECESET:
		n := &PieceNode{Designator: p.tok.Literal}
		p.advance()
		return n, nil
	case SQUARE, SQUARESET:
		n := &SquareNode{Designator: p.tok.Literal}
		p.advance()
		return n, nil
	case NUMBER:
		v, err := strconv.Atoi(p.tok.Literal)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %s: %w", p.tok.Literal, errors.ErrCQLSyntax)
		}
		p.advance()
		return &NumberNode{Value: v}, nil
	case STRING:
		n := &StringNode{Value: p.tok.Literal}
		p.advance()
		return n, nil
	case LT, GT, LE, GE, EQ:
		return p.parseComparison()
	default:
		return nil, fmt.Errorf("unexpected token: %v (%q): %w", p.tok.Type, p.tok.Literal, errors.ErrCQLSyntax)
	}
}

// parseParenthesised handles everything that can follow "(": a logical
// operator, a comparison operator, or a filter name wrapped for grouping.
func (p *Parser) parseParenthesised() (Node, error) {
	p.advance() // consume '('

	switch p.tok.Type {
	case IDENT:
		if isLogicalOp(p.tok.Literal) {
			return p.parseLogical()
		}
		return p.parseWrappedFilter()
	case LT, GT, LE, GE, EQ:
		return p.parseComparison()
	default:
		return nil, fmt.Errorf("unexpected token after '(': %v: %w", p.tok.Type, errors.ErrCQLSyntax)
	}
}

func isLogicalOp(word string) bool {
	return word == "and" || word == "or" || word == "not"
}

func (p *Parser) parseLogical() (Node, error) {
	op := p.tok.Literal
	p.advance()

	var children []Node
	for p.tok.Type != RPAREN && p.tok.Type != EOF {
		child, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if p.tok.Type != RPAREN {
		return nil, fmt.Errorf("expected ')', got %v: %w", p.tok.Type, errors.ErrCQLSyntax)
	}
	p.advance()

	if len(children) == 0 {
		return nil, fmt.Errorf("logical operator %q requires at least one operand: %w", op, errors.ErrCQLSyntax)
	}
	return &LogicalNode{Op: op, Children: children}, nil
}

func (p *Parser) parseWrappedFilter() (Node, error) {
	filter, err := p.parseFilter()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != RPAREN {
		return nil, fmt.Errorf("expected ')', got %v: %w", p.tok.Type, errors.ErrCQLSyntax)
	}
	p.advance()
	return filter, nil
}

// parseFilter reads a filter name and then as many of its arguments as its
// arity calls for, stopping early if the input runs out or another filter
// or logical sub-expression begins first.
func (p *Parser) parseFilter() (Node, error) {
	name := p.tok.Literal
	p.advance()

	if isNiladicFilter(name) {
		return &FilterNode{Name: name}, nil
	}

	arity := filterArity(name)
	var args []Node

	for {
		if p.tok.Type == EOF || p.tok.Type == RPAREN {
			break
		}
		if arity > 0 && len(args) >= arity {
			break
		}
		if p.tok.Type == IDENT && isFilterName(p.tok.Literal) {
			break
		}
		if p.tok.Type == LPAREN && p.startsNewExpression() {
			break
		}

		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return &FilterNode{Name: name, Args: args}, nil
}

// startsNewExpression reports whether the token after an unconsumed '('
// begins a logical or comparison sub-expression rather than a grouped
// filter argument.
func (p *Parser) startsNewExpression() bool {
	if p.ahead.Type == IDENT && isLogicalOp(p.ahead.Literal) {
		return true
	}
	switch p.ahead.Type {
	case LT, GT, LE, GE, EQ:
		return true
	default:
		return false
	}
}

func (p *Parser) parseComparison() (Node, error) {
	op := p.tok.Literal
	p.advance()

	left, err := p.parseTerm()
	if err != nil {
		return nil, fmt.Errorf("expected left operand: %w", err)
	}
	right, err := p.parseTerm()
	if err != nil {
		return nil, fmt.Errorf("expected right operand: %w", err)
	}
	if p.tok.Type != RPAREN {
		return nil, fmt.Errorf("expected ')', got %v: %w", p.tok.Type, errors.ErrCQLSyntax)
	}
	p.advance()

	return &ComparisonNode{Op: op, Left: left, Right: right}, nil
}

// filterNames lists every recognised filter/keyword identifier, whether it
// takes zero arguments, and how many positional arguments it takes when it
// doesn't (-1 meaning variable/unknown arity).
var filterNames = map[string]struct {
	niladic bool
	arity   int
}{
	"piece":           {arity: 2}, // piece <designator> <square>
	"attack":          {arity: 2}, // attack <piece> <square>
	"check":           {niladic: true},
	"mate":            {niladic: true},
	"stalemate":       {niladic: true},
	"wtm":             {niladic: true},
	"btm":             {niladic: true},
	"count":           {arity: 1}, // count <designator>
	"material":        {arity: 1}, // material <color>
	"result":          {arity: 1}, // result <value>
	"player":          {arity: 1}, // player <name>
	"elo":             {arity: 1}, // elo <color>
	"year":            {niladic: true, arity: 2},
	"pin":             {arity: 3}, // pin <pinned> <pinner> <target>
	"ray":             {arity: 3}, // ray <dir> <from> <to>
	"between":         {arity: 2}, // between <sq1> <sq2>
	"flip":            {arity: 1},
	"flipvertical":    {arity: 1},
	"flipcolor":       {arity: 1},
	"shift":           {arity: 1},
	"shifthorizontal": {arity: 1},
	"shiftvertical":   {arity: 1},
	"controls":        {arity: 2}, // controls <piece> <square>
	"power":           {arity: 2}, // power <piece> <op>
	"horizontal":      {niladic: true},
	"vertical":        {niladic: true},
	"diagonal":        {niladic: true},
	"orthogonal":      {niladic: true},
	"white":           {niladic: true},
	"black":           {niladic: true},
}

func isFilterName(name string) bool {
	_, ok := filterNames[name]
	return ok
}

func isNiladicFilter(name string) bool {
	return filterNames[name].niladic
}

// filterArity returns the expected positional-argument count for name, or
// -1 if unknown or variable. The "year" entry carries niladic=true
// alongside a nonzero arity; parseFilter checks isNiladicFilter first, so
// year never takes arguments and serves as a numeric operand inside a
// comparison, e.g. (> (year) 1970).
func filterArity(name string) int {
	entry, ok := filterNames[name]
	if !ok {
		return -1
	}
	return entry.arity
}
