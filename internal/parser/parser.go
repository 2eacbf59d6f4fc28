// Package parser reads entailments written in the textual notation
//
//	And[Neq(x,y)]|SepConj[x->y,y->Nil] |- True|SepConj[ls(x,Nil)]
//
// and turns them into sl.Entailment values.
package parser

import (
	"fmt"
	"strings"

	"github.com/gnoverse/alice/internal/sl"
)

// Error is a syntax error at a byte offset of the input.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("col %d: %s", e.Pos+1, e.Msg)
}

// Parser consumes tokens produced by the Lexer.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a Parser over tokens. The slice must end in TokenEOF.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a complete entailment. Trailing input is an error.
func Parse(input string) (sl.Entailment, error) {
	p, err := newParserFor(input)
	if err != nil {
		return sl.Entailment{}, err
	}
	goal, err := p.ParseEntailment()
	if err != nil {
		return sl.Entailment{}, err
	}
	if err := p.expectEOF(); err != nil {
		return sl.Entailment{}, err
	}
	return goal, nil
}

// ParseFormula parses a single symbolic heap such as "True|SepConj[x->Nil]".
func ParseFormula(input string) (sl.Formula, error) {
	p, err := newParserFor(input)
	if err != nil {
		return sl.Formula{}, err
	}
	f, err := p.ParseFormula()
	if err != nil {
		return sl.Formula{}, err
	}
	if err := p.expectEOF(); err != nil {
		return sl.Formula{}, err
	}
	return f, nil
}

func newParserFor(input string) (*Parser, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens), nil
}

// ParseEntailment parses Formula '|-' Formula.
func (p *Parser) ParseEntailment() (sl.Entailment, error) {
	ant, err := p.ParseFormula()
	if err != nil {
		return sl.Entailment{}, err
	}
	if _, err := p.expect(TokenTurnstile); err != nil {
		return sl.Entailment{}, err
	}
	cons, err := p.ParseFormula()
	if err != nil {
		return sl.Entailment{}, err
	}
	return sl.Entails(ant, cons), nil
}

// ParseFormula parses Pure '|' Spatial.
func (p *Parser) ParseFormula() (sl.Formula, error) {
	pure, err := p.parsePure()
	if err != nil {
		return sl.Formula{}, err
	}
	if _, err := p.expect(TokenBar); err != nil {
		return sl.Formula{}, err
	}
	spatial, err := p.parseSpatial()
	if err != nil {
		return sl.Formula{}, err
	}
	return sl.Formula{Pure: pure, Spatial: spatial}, nil
}

func (p *Parser) parsePure() (sl.Pure, error) {
	tok, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.EqualFold(tok.Value, "True"):
		return sl.True{}, nil
	case tok.Value == "And":
		var ops []sl.Op
		err := p.parseList(func() error {
			op, err := p.parseOp()
			if err != nil {
				return err
			}
			ops = append(ops, op)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return sl.And{Ops: ops}, nil
	default:
		return nil, &Error{Pos: tok.Position, Msg: fmt.Sprintf("expected 'True' or 'And', found %q", tok.Value)}
	}
}

func (p *Parser) parseOp() (sl.Op, error) {
	tok, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	if tok.Value != "Eq" && tok.Value != "Neq" {
		return nil, &Error{Pos: tok.Position, Msg: fmt.Sprintf("expected 'Eq' or 'Neq', found %q", tok.Value)}
	}
	l, r, err := p.parsePair()
	if err != nil {
		return nil, err
	}
	if tok.Value == "Eq" {
		return sl.Eq(l, r), nil
	}
	return sl.Neq(l, r), nil
}

func (p *Parser) parseSpatial() (sl.Spatial, error) {
	tok, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.EqualFold(tok.Value, "Emp"):
		return sl.Emp{}, nil
	case tok.Value == "SepConj":
		var atoms []sl.AtomSpatial
		err := p.parseList(func() error {
			a, err := p.parseAtomSpatial()
			if err != nil {
				return err
			}
			atoms = append(atoms, a)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return sl.SepConj{Atoms: atoms}, nil
	default:
		return nil, &Error{Pos: tok.Position, Msg: fmt.Sprintf("expected 'Emp' or 'SepConj', found %q", tok.Value)}
	}
}

// parseAtomSpatial parses "ls(e,e)" or "e->e". An identifier "ls" that is
// not followed by '(' is an ordinary variable.
func (p *Parser) parseAtomSpatial() (sl.AtomSpatial, error) {
	if tok := p.peek(); tok.Type == TokenIdent && tok.Value == "ls" && p.peekAt(1).Type == TokenLParen {
		p.current++
		l, r, err := p.parsePair()
		if err != nil {
			return nil, err
		}
		return sl.Ls(l, r), nil
	}

	from, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenArrow); err != nil {
		return nil, err
	}
	to, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return sl.Pts(from, to), nil
}

func (p *Parser) parseExpr() (sl.Expr, error) {
	tok, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(tok.Value, "Nil") {
		return sl.Nil, nil
	}
	return sl.Var(tok.Value), nil
}

// parsePair parses '(' Expr ',' Expr ')'.
func (p *Parser) parsePair() (sl.Expr, sl.Expr, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, nil, err
	}
	l, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(TokenComma); err != nil {
		return nil, nil, err
	}
	r, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

// parseList parses '[' (elem (',' elem)*)? ']'. Empty lists are accepted.
func (p *Parser) parseList(elem func() error) error {
	if _, err := p.expect(TokenLBracket); err != nil {
		return err
	}
	if p.peek().Type == TokenRBracket {
		p.current++
		return nil
	}
	for {
		if err := elem(); err != nil {
			return err
		}
		tok := p.next()
		switch tok.Type {
		case TokenComma:
			continue
		case TokenRBracket:
			return nil
		default:
			return unexpected(tok, "',' or ']'")
		}
	}
}

func (p *Parser) peek() Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(offset int) Token {
	i := p.current + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if tok.Type != TokenEOF {
		p.current++
	}
	return tok
}

func (p *Parser) expect(tokenType TokenType) (Token, error) {
	tok := p.next()
	if tok.Type != tokenType {
		return tok, unexpected(tok, tokenType.String())
	}
	return tok, nil
}

func (p *Parser) expectEOF() error {
	if tok := p.peek(); tok.Type != TokenEOF {
		return unexpected(tok, TokenEOF.String())
	}
	return nil
}

func unexpected(tok Token, want string) *Error {
	found := tok.Type.String()
	if tok.Type == TokenIdent {
		found = fmt.Sprintf("%q", tok.Value)
	}
	return &Error{Pos: tok.Position, Msg: fmt.Sprintf("expected %s, found %s", want, found)}
}
