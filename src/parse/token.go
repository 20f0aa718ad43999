package parse

import (
	"fmt"
	"strconv"
)

// LineInfo is a position in the source, lines and columns start at 1.
type LineInfo struct {
	Line   int64
	Column int64
}

type (
	tokenType string
	token     struct {
		LineInfo
		Kind     tokenType
		FloatVal float64
	}
)

const (
	tokenAdd        tokenType = "+"
	tokenQuestion   tokenType = "?"
	tokenColon      tokenType = ":"
	tokenOpenParen  tokenType = "("
	tokenCloseParen tokenType = ")"
	tokenTrue       tokenType = "true"
	tokenFalse      tokenType = "false"
	tokenNumber     tokenType = "number"
	tokenEOS        tokenType = "<EOS>"
)

var keywords = map[string]tokenType{
	string(tokenTrue):  tokenTrue,
	string(tokenFalse): tokenFalse,
}

func (tk *token) String() string {
	switch tk.Kind {
	case tokenNumber:
		return strconv.FormatFloat(tk.FloatVal, 'g', -1, 64)
	default:
		return string(tk.Kind)
	}
}

func (li LineInfo) String() string {
	return fmt.Sprintf("%v:%v", li.Line, li.Column)
}
