// Package repl is an interactive loop that reads expressions and prints their
// type.
package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/tanema/arith"
	"github.com/tanema/arith/src/ast"
	"github.com/tanema/arith/src/check"
	"github.com/tanema/arith/src/conf"
	"github.com/tanema/arith/src/parse"
)

const continuePrompt = "...> "

// REPL reads expressions line by line. An expression may span several lines,
// input is buffered until it parses or fails with something other than a
// premature end.
type REPL struct {
	cfg     conf.Config
	logger  *slog.Logger
	out     io.Writer
	errOut  io.Writer
	typeFmt *color.Color
	errFmt  *color.Color
	parser  *parse.Parser
	buf     bytes.Buffer
	prompt  string
}

// New creates a repl writing types to out and errors to errOut.
func New(cfg conf.Config, logger *slog.Logger, out, errOut io.Writer) *REPL {
	if logger == nil {
		logger = slog.Default()
	}
	r := &REPL{
		cfg:     cfg,
		logger:  logger,
		out:     out,
		errOut:  errOut,
		typeFmt: color.New(color.FgGreen),
		errFmt:  color.New(color.FgRed),
		parser:  parse.New(),
		prompt:  cfg.Prompt,
	}
	if cfg.NoColor {
		r.typeFmt.DisableColor()
		r.errFmt.DisableColor()
	}
	return r
}

// Run will start an interactive session on the terminal. It returns when the
// user interrupts twice or closes the input.
func (r *REPL) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.cfg.Prompt,
		HistoryFile: r.cfg.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	for {
		src, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if r.Interrupt() {
					rl.SetPrompt(r.prompt)
					fmt.Fprint(r.errOut, "Press ctrl-c again to quit.\n")
					continue
				}
				return nil
			} else if errors.Is(err, io.EOF) {
				r.Flush()
				return nil
			}
			fmt.Fprintln(r.errOut, err)
			continue
		}
		rl.SetPrompt(r.Feed(src))
	}
}

// Interrupt drops any partially entered expression. It returns false if there
// was nothing to drop, meaning the session should end.
func (r *REPL) Interrupt() bool {
	if r.buf.Len() == 0 {
		return false
	}
	r.buf.Reset()
	r.prompt = r.cfg.Prompt
	return true
}

// Flush reports and drops a partially entered expression when no more input
// will come to complete it.
func (r *REPL) Flush() {
	pending := strings.TrimSpace(r.buf.String())
	r.buf.Reset()
	r.prompt = r.cfg.Prompt
	if pending != "" {
		r.errFmt.Fprintf(r.errOut, "Parse Error: <repl>: unexpected end of input, dropped %q\n", pending)
	}
}

// Feed takes a single line of input and returns the prompt for the next one.
func (r *REPL) Feed(line string) string {
	r.buf.WriteString(line)
	r.buf.WriteString("\n")
	if strings.TrimSpace(r.buf.String()) == "" {
		r.buf.Reset()
		return r.prompt
	}

	expr, err := r.parser.Parse("<repl>", strings.NewReader(r.buf.String()))
	if arith.IsIncomplete(err) {
		r.prompt = continuePrompt
		return r.prompt
	}
	r.buf.Reset()
	r.prompt = r.cfg.Prompt
	if err != nil {
		r.errFmt.Fprintln(r.errOut, err)
		return r.prompt
	}

	r.logger.Debug("parsed expression", "expr", expr.String(), "depth", ast.Depth(expr))
	ty, err := arith.Check("<repl>", expr)
	if err != nil {
		var cerr *check.Error
		if errors.As(err, &cerr) {
			r.logger.Debug("check failed", "kind", cerr.Kind, "locus", cerr.Locus, "at", cerr.Expr.String())
		}
		r.errFmt.Fprintln(r.errOut, err)
		return r.prompt
	}
	r.typeFmt.Fprintln(r.out, ty)
	return r.prompt
}
