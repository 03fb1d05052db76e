// Package parser implements the small arithmetic expression grammar the
// CLI accepts for the rotation angle: sums and products of numeric
// literals, parenthesized subexpressions, unary +/-, and the identifier
// "pi", evaluated against internal/bigreal so the angle carries as much
// precision as the rest of the pipeline.
//
//	expr   = mul (('+'|'-') mul)*
//	mul    = unary (('*'|'/') unary)*
//	unary  = ('+'|'-')? primary
//	primary = NUMBER | '(' expr ')' | 'pi'
package parser

import (
	"fmt"

	"github.com/quantumlang/gridsynth/internal/bigreal"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokPi
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits the input into a flat token stream. Numbers take at most
// one decimal point; any other character not recognized below is an error.
func tokenize(s string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '+':
			toks = append(toks, token{tokPlus, "+"})
			i++
		case c == '-':
			toks = append(toks, token{tokMinus, "-"})
			i++
		case c == '*':
			toks = append(toks, token{tokStar, "*"})
			i++
		case c == '/':
			toks = append(toks, token{tokSlash, "/"})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			dotSeen := false
			for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
				if s[i] == '.' {
					if dotSeen {
						return nil, fmt.Errorf("parser: number %q has more than one decimal point", s[start:i+1])
					}
					dotSeen = true
				}
				i++
			}
			toks = append(toks, token{tokNumber, s[start:i]})
		case isIdentChar(c):
			start := i
			for i < len(s) && isIdentChar(s[i]) {
				i++
			}
			word := s[start:i]
			if word != "pi" {
				return nil, fmt.Errorf("parser: unrecognized identifier %q", word)
			}
			toks = append(toks, token{tokPi, word})
		default:
			return nil, fmt.Errorf("parser: unexpected character %q", c)
		}
	}
	toks = append(toks, token{tokEOF, ""})
	return toks, nil
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Node is an expression-tree node. Leaf nodes carry a number or the pi
// constant; interior nodes carry an operator and two children (unary minus
// is represented as 0 - x, so it has two children as well).
type Node struct {
	Op       byte // 0 for leaves, '+','-','*','/' for interior nodes
	Literal  string
	IsPi     bool
	Children []*Node
}

type parserState struct {
	toks []token
	pos  int
}

func (p *parserState) peek() token { return p.toks[p.pos] }
func (p *parserState) next() token { t := p.toks[p.pos]; p.pos++; return t }

// Parse builds an expression tree from the given input string.
func Parse(s string) (*Node, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	p := &parserState{toks: toks}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("parser: unexpected trailing token %q", p.peek().text)
	}
	return n, nil
}

func (p *parserState) parseExpr() (*Node, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.parseMul()
			if err != nil {
				return nil, err
			}
			left = &Node{Op: '+', Children: []*Node{left, right}}
		case tokMinus:
			p.next()
			right, err := p.parseMul()
			if err != nil {
				return nil, err
			}
			left = &Node{Op: '-', Children: []*Node{left, right}}
		default:
			return left, nil
		}
	}
}

func (p *parserState) parseMul() (*Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &Node{Op: '*', Children: []*Node{left, right}}
		case tokSlash:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &Node{Op: '/', Children: []*Node{left, right}}
		default:
			return left, nil
		}
	}
}

func (p *parserState) parseUnary() (*Node, error) {
	switch p.peek().kind {
	case tokPlus:
		p.next()
		return p.parsePrimary()
	case tokMinus:
		p.next()
		inner, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		zero := &Node{Literal: "0"}
		return &Node{Op: '-', Children: []*Node{zero, inner}}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *parserState) parsePrimary() (*Node, error) {
	tok := p.peek()
	switch tok.kind {
	case tokNumber:
		p.next()
		return &Node{Literal: tok.text}, nil
	case tokPi:
		p.next()
		return &Node{IsPi: true}, nil
	case tokLParen:
		p.next()
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, fmt.Errorf("parser: expected ')', got %q", p.peek().text)
		}
		p.next()
		return n, nil
	default:
		return nil, fmt.Errorf("parser: unexpected token %q", tok.text)
	}
}

// Value folds an expression tree down to a bigreal.Real.
func Value(n *Node) (bigreal.Real, error) {
	if n.Op == 0 {
		if n.IsPi {
			return bigreal.Pi(), nil
		}
		return bigreal.FromString(n.Literal)
	}
	left, err := Value(n.Children[0])
	if err != nil {
		return bigreal.Real{}, err
	}
	right, err := Value(n.Children[1])
	if err != nil {
		return bigreal.Real{}, err
	}
	switch n.Op {
	case '+':
		return left.Add(right), nil
	case '-':
		return left.Sub(right), nil
	case '*':
		return left.Mul(right), nil
	case '/':
		return left.Quo(right), nil
	default:
		return bigreal.Real{}, fmt.Errorf("parser: unknown operator %q", n.Op)
	}
}

// Eval parses and evaluates an expression in one step.
func Eval(s string) (bigreal.Real, error) {
	n, err := Parse(s)
	if err != nil {
		return bigreal.Real{}, err
	}
	return Value(n)
}
