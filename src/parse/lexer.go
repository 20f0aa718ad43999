package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/tanema/arith/src/lerrors"
)

type lexer struct {
	filename string
	rdr      *bufio.Reader
	peeked   []*token
	LineInfo
}

func newLexer(filename string, src io.Reader) *lexer {
	return &lexer{
		filename: filename,
		LineInfo: LineInfo{Line: 1},
		rdr:      bufio.NewReaderSize(src, 4096),
		peeked:   []*token{},
	}
}

func (lex *lexer) errf(msg string, data ...any) error {
	return lex.err(fmt.Errorf(msg, data...))
}

func (lex *lexer) err(err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	return &lerrors.Error{
		Filename: lex.filename,
		Kind:     lerrors.LexerErr,
		Line:     lex.Line,
		Column:   lex.Column,
		Err:      err,
	}
}

func (lex *lexer) peek() rune {
	chs, _ := lex.rdr.Peek(1)
	if len(chs) == 0 {
		return 0
	}
	return rune(chs[0])
}

func (lex *lexer) next() (rune, error) {
	ch, _, err := lex.rdr.ReadRune()
	if err != nil {
		return ch, lex.err(err)
	}
	if ch == '\n' {
		lex.Line++
		lex.Column = 0
		return ch, nil
	}
	lex.Column++
	return ch, nil
}

func (lex *lexer) skipWhitespace() error {
	for {
		if ch := lex.peek(); ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			if _, err := lex.next(); err != nil {
				return err
			}
			continue
		}
		return nil
	}
}

func (lex *lexer) skipComment() error {
	for {
		if ch := lex.peek(); ch == '\n' || ch == 0 {
			return nil
		} else if _, err := lex.next(); err != nil {
			return err
		}
	}
}

func (lex *lexer) tokenVal(tk tokenType) (*token, error) {
	return &token{Kind: tk, LineInfo: LineInfo{Line: lex.Line, Column: lex.Column - int64(len(tk)) + 1}}, nil
}

// push a token back so the next call to Next returns it.
func (lex *lexer) back(tk *token) {
	lex.peeked = append(lex.peeked, tk)
}

func (lex *lexer) Peek() (*token, error) {
	if len(lex.peeked) == 0 {
		tk, err := lex.Next()
		if err != nil && !errors.Is(err, io.EOF) {
			return &token{Kind: tokenEOS}, err
		} else if err != nil && errors.Is(err, io.EOF) {
			return &token{Kind: tokenEOS, LineInfo: lex.LineInfo}, nil
		}
		lex.back(tk)
	}
	return lex.peeked[len(lex.peeked)-1], nil
}

func (lex *lexer) Next() (*token, error) {
	if len(lex.peeked) != 0 {
		top := lex.peeked[len(lex.peeked)-1]
		lex.peeked = lex.peeked[:len(lex.peeked)-1]
		return top, nil
	}
	for {
		if err := lex.skipWhitespace(); err != nil {
			return nil, err
		}
		ch, err := lex.next()
		if err != nil {
			return nil, err
		}
		peekCh := lex.peek()
		switch {
		case ch == '/' && peekCh == '/':
			if err := lex.skipComment(); err != nil {
				return nil, err
			}
			continue
		case ch == '+':
			return lex.tokenVal(tokenAdd)
		case ch == '?':
			return lex.tokenVal(tokenQuestion)
		case ch == ':':
			return lex.tokenVal(tokenColon)
		case ch == '(':
			return lex.tokenVal(tokenOpenParen)
		case ch == ')':
			return lex.tokenVal(tokenCloseParen)
		case ch == '.' && unicode.IsDigit(peekCh):
			return lex.parseNumber(ch)
		case unicode.IsDigit(ch):
			return lex.parseNumber(ch)
		case unicode.IsLetter(ch) || ch == '_':
			return lex.parseIdentifier(ch)
		}
		return nil, lex.errf("unexpected character %v", string(ch))
	}
}

// there are no variables so the only identifiers are keywords.
func (lex *lexer) parseIdentifier(start rune) (*token, error) {
	linfo := lex.LineInfo
	var ident bytes.Buffer
	ident.WriteRune(start)
	for {
		if peekCh := lex.peek(); unicode.IsLetter(peekCh) || unicode.IsDigit(peekCh) || peekCh == '_' {
			if err := lex.writeNext(&ident); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}

	strVal := ident.String()
	if kw, ok := keywords[strVal]; ok {
		return &token{Kind: kw, LineInfo: linfo}, nil
	}
	return nil, lex.errf("unknown identifier %q", strVal)
}

func (lex *lexer) parseNumber(start rune) (*token, error) {
	linfo := lex.LineInfo
	var number bytes.Buffer
	isHex, isFloat := false, false

	if start != '.' {
		number.WriteRune(start)
		if err := lex.consumeDigits(&number, isHex); err != nil {
			return nil, err
		}
		if peekCh := lex.peek(); start == '0' && number.Len() == 1 && (peekCh == 'x' || peekCh == 'X') {
			isHex = true
			if err := lex.writeNext(&number); err != nil {
				return nil, err
			} else if err := lex.consumeDigits(&number, isHex); err != nil {
				return nil, err
			}
		}
		if peekCh := lex.peek(); !isHex && peekCh == '.' {
			isFloat = true
			if err := lex.writeNext(&number); err != nil {
				return nil, err
			} else if err := lex.consumeDigits(&number, isHex); err != nil {
				return nil, err
			}
		}
	} else {
		number.WriteString("0.")
		isFloat = true
		if err := lex.consumeDigits(&number, isHex); err != nil {
			return nil, err
		}
	}

	if peekCh := lex.peek(); !isHex && (peekCh == 'e' || peekCh == 'E') {
		isFloat = true
		if err := lex.parseExponent(&number); err != nil {
			return nil, err
		}
	}

	if ch := lex.peek(); unicode.IsLetter(ch) || ch == '_' {
		return nil, lex.errf("malformed number near %v%v", number.String(), string(ch))
	}

	if isFloat {
		// out of range literals round to ±Inf or 0 rather than failing.
		num, err := strconv.ParseFloat(number.String(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, lex.errf("malformed number near %v", number.String())
		}
		return &token{Kind: tokenNumber, FloatVal: num, LineInfo: linfo}, nil
	}

	strNum := number.String()
	if !isHex {
		if strNum = strings.TrimLeft(strNum, "0"); len(strNum) == 0 {
			return &token{Kind: tokenNumber, LineInfo: linfo}, nil
		}
	}
	ivalue, err := strconv.ParseInt(strNum, 0, 64)
	if errors.Is(err, strconv.ErrRange) {
		bval, ok := new(big.Int).SetString(strNum, 0)
		if !ok {
			return nil, lex.errf("malformed number near %v", number.String())
		}
		num, _ := new(big.Float).SetInt(bval).Float64()
		return &token{Kind: tokenNumber, FloatVal: num, LineInfo: linfo}, nil
	} else if err != nil {
		return nil, lex.errf("malformed number near %v", number.String())
	}
	return &token{Kind: tokenNumber, FloatVal: float64(ivalue), LineInfo: linfo}, nil
}

func (lex *lexer) consumeDigits(number *bytes.Buffer, withHex bool) error {
	for {
		ch := lex.peek()
		if !unicode.IsDigit(ch) && (!withHex || !isHexDigit(ch)) {
			return nil
		} else if err := lex.writeNext(number); err != nil {
			return err
		}
	}
}

func (lex *lexer) parseExponent(number *bytes.Buffer) error {
	if err := lex.writeNext(number); err != nil {
		return err
	}
	if ch := lex.peek(); ch == '-' || ch == '+' {
		if err := lex.writeNext(number); err != nil {
			return err
		}
	}
	if !unicode.IsDigit(lex.peek()) {
		return lex.errf("malformed number near %v", number.String())
	}
	return lex.consumeDigits(number, false)
}

func (lex *lexer) writeNext(buf *bytes.Buffer) error {
	if ch, err := lex.next(); err != nil {
		return err
	} else if _, err := buf.WriteRune(ch); err != nil {
		return lex.err(err)
	}
	return nil
}

func isHexDigit(ch rune) bool {
	return unicode.IsDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
