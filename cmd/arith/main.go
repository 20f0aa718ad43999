// Package main is the main entrypoint to the arith type checker.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tanema/arith"
	"github.com/tanema/arith/src/conf"
	"github.com/tanema/arith/src/parse"
	"github.com/tanema/arith/src/repl"
	"github.com/tanema/arith/src/types"
)

var (
	parseOnly   bool
	showVersion bool
	executeExpr string
	interactive bool
	debug       bool
	expectType  string
)

func init() {
	flag.BoolVar(&parseOnly, "p", false, "parse only, print the expression tree")
	flag.BoolVar(&showVersion, "v", false, "show version information")
	flag.StringVar(&executeExpr, "e", "", "check expression 'expr'")
	flag.BoolVar(&interactive, "i", false, "enter interactive mode after checking a script")
	flag.BoolVar(&debug, "debug", false, "log debug information to stderr")
	flag.StringVar(&expectType, "expect", "", "exit with an error unless the expression has this type")
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	cfg, err := conf.Load(".env")
	checkErr(err)
	cfg.Debug = cfg.Debug || debug
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	var expected types.Type
	if expectType != "" {
		var ok bool
		if expected, ok = types.Lookup(expectType); !ok {
			checkErr(fmt.Errorf("unknown type %q", expectType))
		}
	}

	if showVersion {
		printVersion()
	}
	args := flag.Args()
	ran := true
	if stat, _ := os.Stdin.Stat(); (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		checkErr(err)
		checkSrc("<stdin>", string(data), expected)
	} else if executeExpr != "" {
		checkSrc("<string>", executeExpr, expected)
	} else if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		checkErr(err)
		checkSrc(args[0], string(data), expected)
	} else {
		ran = false
	}

	if (!ran && !showVersion) || interactive {
		runREPL(cfg, logger)
	}
}

func newLogger(cfg conf.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func printVersion() {
	fmt.Fprintf(os.Stderr, "%v\n", conf.FullVersion())
}

func printUsage() {
	printVersion()
	fmt.Fprint(os.Stderr, "\nUsage: arith [options] [script]\n")
	flag.PrintDefaults()
}

func checkErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func checkSrc(path, src string, expected types.Type) {
	expr, err := parse.Parse(path, strings.NewReader(src))
	if arith.IsIncomplete(err) {
		checkErr(fmt.Errorf("%v: unexpected end of input", path))
	}
	checkErr(err)
	slog.Debug("parsed expression", "file", path, "expr", expr.String())
	if parseOnly {
		fmt.Println(expr.String())
		return
	}
	ty, err := arith.Check(path, expr)
	checkErr(err)
	fmt.Println(ty)
	if expected.Valid() && ty != expected {
		checkErr(fmt.Errorf("expected type %v but found %v", expected, ty))
	}
}

func runREPL(cfg conf.Config, logger *slog.Logger) {
	printVersion()
	fmt.Fprint(os.Stderr, "Press ctrl-c to quit or clear current buffer.\n")
	checkErr(repl.New(cfg, logger, os.Stdout, os.Stderr).Run())
}
