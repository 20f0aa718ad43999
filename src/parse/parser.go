// Package parse turns source text into an ast.Expr.
//
//	expr    -> add ['?' expr ':' expr]
//	add     -> primary {'+' primary}
//	primary -> 'true' | 'false' | Number | '(' expr ')'
//
// The conditional binds loosest and groups to the right, so
// `1 + 2 ? 1 : true ? 2 : 3` is `(1 + 2) ? 1 : (true ? 2 : 3)`.
package parse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tanema/arith/src/ast"
	"github.com/tanema/arith/src/conf"
	"github.com/tanema/arith/src/lerrors"
)

// Parser is the object that will parse a source into an expression tree.
// A Parser can be reused but is not safe for concurrent use.
type Parser struct {
	lex      *lexer
	filename string
	levels   int
}

// New creates a new parser that can parse one source at a time.
func New() *Parser {
	return &Parser{}
}

// File is a helper function around Parse to open and close a file automatically.
func File(path string) (ast.Expr, error) {
	src, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()
	return Parse(path, src)
}

// String parses a source held in memory.
func String(src string) (ast.Expr, error) {
	return Parse("<string>", strings.NewReader(src))
}

// Parse parses a whole source as a single expression. If the source ends
// before the expression is complete io.EOF is returned unwrapped, so callers
// reading line by line can ask for more input.
func Parse(filename string, src io.Reader) (ast.Expr, error) {
	return New().Parse(filename, src)
}

// Parse resets the parser and parses src.
func (p *Parser) Parse(filename string, src io.Reader) (ast.Expr, error) {
	p.filename = filename
	p.lex = newLexer(filename, src)
	p.levels = 0
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	tk, err := p.peek()
	if err != nil {
		return nil, err
	} else if tk.Kind != tokenEOS {
		return nil, p.parseErr(tk, fmt.Errorf("unexpected %v after expression", tk))
	}
	return expr, nil
}

func (p *Parser) parseErr(tk *token, err error) error {
	if err == nil {
		return nil
	}
	var lerr *lerrors.Error
	if errors.As(err, &lerr) {
		return err
	} else if errors.Is(err, io.EOF) {
		return err
	}
	newErr := &lerrors.Error{
		Kind:     lerrors.ParserErr,
		Filename: p.filename,
		Err:      err,
	}
	if tk != nil {
		newErr.Line = tk.Line
		newErr.Column = tk.Column
	}
	return newErr
}

func (p *Parser) peek() (*token, error) {
	return p.lex.Peek()
}

func (p *Parser) consumeToken(tt tokenType) (*token, error) {
	tk, err := p.lex.Next()
	if err != nil {
		return nil, p.parseErr(tk, err)
	} else if tt != tk.Kind {
		return nil, p.parseErr(tk, fmt.Errorf("expected %q but consumed %q", tt, tk.Kind))
	}
	return tk, nil
}

func (p *Parser) next(tt tokenType) error {
	_, err := p.consumeToken(tt)
	return err
}

// mustnext is only used after a peek has confirmed the token kind.
func (p *Parser) mustnext(tt tokenType) *token {
	tk, err := p.consumeToken(tt)
	if err != nil {
		panic(err)
	}
	return tk
}

func (p *Parser) enterLevel(tk *token) error {
	p.levels++
	if p.levels > conf.MAXSYNTAXLEVELS {
		return p.parseErr(tk, errors.New("chunk has too many syntax levels"))
	}
	return nil
}

func (p *Parser) leaveLevel() { p.levels-- }

// expr -> add ['?' expr ':' expr].
func (p *Parser) expression() (ast.Expr, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}
	if err := p.enterLevel(tk); err != nil {
		return nil, err
	}
	defer p.leaveLevel()

	cond, err := p.add()
	if err != nil {
		return nil, err
	}
	if tk, err = p.peek(); err != nil {
		return nil, err
	} else if tk.Kind != tokenQuestion {
		return cond, nil
	}
	p.mustnext(tokenQuestion)
	thn, err := p.expression()
	if err != nil {
		return nil, err
	} else if err := p.next(tokenColon); err != nil {
		return nil, err
	}
	els, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.If{Cond: cond, Then: thn, Else: els}, nil
}

// add -> primary {'+' primary}.
func (p *Parser) add() (ast.Expr, error) {
	left, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		tk, err := p.peek()
		if err != nil {
			return nil, err
		} else if tk.Kind != tokenAdd {
			return left, nil
		}
		p.mustnext(tokenAdd)
		right, err := p.primary()
		if err != nil {
			return nil, err
		}
		left = &ast.Add{Left: left, Right: right}
	}
}

// primary -> 'true' | 'false' | Number | '(' expr ')'.
func (p *Parser) primary() (ast.Expr, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tk.Kind {
	case tokenTrue:
		p.mustnext(tokenTrue)
		return &ast.True{}, nil
	case tokenFalse:
		p.mustnext(tokenFalse)
		return &ast.False{}, nil
	case tokenNumber:
		tk := p.mustnext(tokenNumber)
		return &ast.Number{Value: tk.FloatVal}, nil
	case tokenOpenParen:
		p.mustnext(tokenOpenParen)
		expr, err := p.expression()
		if err != nil {
			return nil, err
		} else if err := p.next(tokenCloseParen); err != nil {
			return nil, err
		}
		return expr, nil
	case tokenEOS:
		return nil, io.EOF
	default:
		return nil, p.parseErr(tk, fmt.Errorf("unexpected %v", tk))
	}
}
