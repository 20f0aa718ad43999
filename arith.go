package arith

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/tanema/arith/src/ast"
	"github.com/tanema/arith/src/check"
	"github.com/tanema/arith/src/lerrors"
	"github.com/tanema/arith/src/parse"
	"github.com/tanema/arith/src/types"
)

// String will parse and type check source held in memory.
func String(label, src string) (types.Type, error) {
	expr, err := parse.Parse(label, strings.NewReader(src))
	if err != nil {
		return 0, err
	}
	return Check(label, expr)
}

// File will parse and type check a source file.
func File(path string) (types.Type, error) {
	src, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = src.Close() }()
	expr, err := parse.Parse(path, src)
	if err != nil {
		return 0, err
	}
	return Check(path, expr)
}

// Check type checks an already parsed expression, attributing any failure to
// filename. The returned error still unwraps to the *check.Error.
func Check(filename string, expr ast.Expr) (types.Type, error) {
	ty, err := check.TypeOf(expr)
	if err != nil {
		return 0, &lerrors.Error{Kind: lerrors.CheckErr, Filename: filename, Err: err}
	}
	return ty, nil
}

// IsIncomplete reports whether err means the source ended before the
// expression did.
func IsIncomplete(err error) bool {
	return errors.Is(err, io.EOF)
}
