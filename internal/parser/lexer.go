package parser

import (
	"fmt"
	"unicode"
)

// TokenType defines the kinds of tokens of the entailment notation.
type TokenType int

const (
	TokenEOF       TokenType = iota
	TokenIdent                // one or more letters
	TokenLBracket             // '['
	TokenRBracket             // ']'
	TokenLParen               // '('
	TokenRParen               // ')'
	TokenComma                // ','
	TokenArrow                // '->'
	TokenBar                  // '|'
	TokenTurnstile            // '|-'
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenLBracket:
		return "'['"
	case TokenRBracket:
		return "']'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenComma:
		return "','"
	case TokenArrow:
		return "'->'"
	case TokenBar:
		return "'|'"
	case TokenTurnstile:
		return "'|-'"
	default:
		return "?"
	}
}

// Token is a single lexical token with its starting byte offset.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// Lexer scans an entailment string into tokens.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a Lexer positioned at the start of input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize scans the whole input. The last token is always TokenEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		start := l.position
		c := l.input[l.position]
		switch {
		case isWhitespace(c):
			l.position++
		case isLetter(c):
			l.lexIdent()
		case c == '[':
			l.emit(TokenLBracket, "[", start, 1)
		case c == ']':
			l.emit(TokenRBracket, "]", start, 1)
		case c == '(':
			l.emit(TokenLParen, "(", start, 1)
		case c == ')':
			l.emit(TokenRParen, ")", start, 1)
		case c == ',':
			l.emit(TokenComma, ",", start, 1)
		case c == '-':
			if !l.peekIs('>') {
				return nil, &Error{Pos: start, Msg: "expected '->'"}
			}
			l.emit(TokenArrow, "->", start, 2)
		case c == '|':
			if l.peekIs('-') {
				l.emit(TokenTurnstile, "|-", start, 2)
			} else {
				l.emit(TokenBar, "|", start, 1)
			}
		default:
			return nil, &Error{Pos: start, Msg: fmt.Sprintf("unexpected character %q", c)}
		}
	}

	l.tokens = append(l.tokens, Token{Type: TokenEOF, Position: l.position})
	return l.tokens, nil
}

func (l *Lexer) lexIdent() {
	start := l.position
	for l.position < len(l.input) && isLetter(l.input[l.position]) {
		l.position++
	}
	l.tokens = append(l.tokens, Token{Type: TokenIdent, Value: l.input[start:l.position], Position: start})
}

func (l *Lexer) emit(tokenType TokenType, value string, pos, width int) {
	l.tokens = append(l.tokens, Token{Type: tokenType, Value: value, Position: pos})
	l.position += width
}

func (l *Lexer) peekIs(c byte) bool {
	return l.position+1 < len(l.input) && l.input[l.position+1] == c
}

func isWhitespace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

// isLetter accepts ASCII letters only; identifiers never contain digits
// or underscores.
func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
