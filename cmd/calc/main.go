package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zephyrtronium/calculator"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv))
}

// Exit statuses.
const (
	exitOK = iota
	exitEval
	exitUsage
)

// run is calc with its environment passed in. It returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, lookup lookupFunc) int {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		inname, cfgname string
		flagcfg         Config
	)
	fs.StringVar(&inname, "in", "", "input file with one expression per line (- for stdin; default stdin if no args given)")
	fs.StringVar(&cfgname, "config", "", "YAML config file")
	fs.StringVar(&flagcfg.LogLevel, "log-level", "", "log level: debug, info, warn, or error")
	fs.StringVar(&flagcfg.LogFormat, "log-format", "", "log format: text or json")
	fs.BoolVar(&flagcfg.Strict, "strict", false, "exit with status 1 at the first expression that fails")
	fs.BoolVar(&flagcfg.Echo, "echo", false, "print the tokens of each expression before its result")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, envpath, err := loadConfig(cfgname, lookup)
	if err != nil {
		fmt.Fprintln(stderr, "calc:", err)
		return exitUsage
	}
	// Flags override everything else, but only the ones actually given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = flagcfg.LogLevel
		case "log-format":
			cfg.LogFormat = flagcfg.LogFormat
		case "strict":
			cfg.Strict = flagcfg.Strict
		case "echo":
			cfg.Echo = flagcfg.Echo
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "calc:", err)
		return exitUsage
	}
	logger := cfg.Logger(stderr)
	logger.Debug("configured", "config", cfgname, "env", envpath, "strict", cfg.Strict, "echo", cfg.Echo)

	srcs, err := inputs(inname, fs.Args(), stdin)
	if err != nil {
		logger.Error("reading input", "err", err)
		return exitUsage
	}
	e := evaluator{out: stdout, log: logger, echo: cfg.Echo}
	for _, src := range srcs {
		if !e.eval(src) && cfg.Strict {
			return exitEval
		}
	}
	return exitOK
}

// loadConfig builds the configuration from defaults, the config file, and
// the environment, in increasing order of priority.
func loadConfig(cfgname string, lookup lookupFunc) (Config, string, error) {
	cfg := defaultConfig()
	if cfgname != "" {
		f, err := os.Open(cfgname)
		if err != nil {
			return cfg, "", err
		}
		defer f.Close()
		if err := LoadConfigFile(&cfg, f); err != nil {
			return cfg, "", fmt.Errorf("config %q: %w", cfgname, err)
		}
	}
	vars, envpath, err := loadDotEnv(lookup)
	if err != nil {
		return cfg, "", err
	}
	if err := ApplyEnv(&cfg, withDotEnv(lookup, vars)); err != nil {
		return cfg, "", err
	}
	return cfg, envpath, nil
}

// inputs collects the expressions to evaluate: lines of the input file, then
// arguments. With neither, expressions are lines of stdin.
func inputs(inname string, args []string, stdin io.Reader) ([]string, error) {
	var srcs []string
	var in io.Reader
	name := inname
	switch {
	case inname == "-", inname == "" && len(args) == 0:
		in, name = stdin, "stdin"
	case inname != "":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	if in != nil {
		s := bufio.NewScanner(in)
		for s.Scan() {
			line := s.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			srcs = append(srcs, line)
		}
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("scan %s: %w", name, err)
		}
	}
	return append(srcs, args...), nil
}

// evaluator evaluates expressions and writes one line of output per
// expression.
type evaluator struct {
	out  io.Writer
	log  *slog.Logger
	echo bool
}

// eval evaluates src and writes its result. If evaluation fails, the
// expression is written back unchanged, the way a calculator display keeps
// showing what was typed. Returns whether evaluation succeeded.
func (e *evaluator) eval(src string) bool {
	r, err := calculator.EvalString(src)
	if err != nil {
		attrs := []any{"expr", src, "err", err}
		var cerr calculator.Error
		if errors.As(err, &cerr) {
			attrs = append(attrs, "kind", cerr.Kind().String())
		}
		var ierr calculator.InputError
		if errors.As(err, &ierr) {
			attrs = append(attrs, "col", ierr.Pos())
		}
		e.log.Warn("evaluation failed", attrs...)
		fmt.Fprintln(e.out, src)
		return false
	}
	res := calculator.Format(r)
	switch toks, err := e.tokens(src); {
	case err != nil:
		e.log.Error("tokenizing evaluated expression", "expr", src, "err", err)
		fmt.Fprintln(e.out, res)
	case toks != nil:
		fmt.Fprintf(e.out, "%v : %s\n", toks, res)
	default:
		fmt.Fprintln(e.out, res)
	}
	e.log.Debug("evaluated", "expr", src, "result", res)
	return true
}

// tokens returns the tokens of src when echoing is enabled and nil otherwise.
func (e *evaluator) tokens(src string) (calculator.Tokens, error) {
	if !e.echo {
		return nil, nil
	}
	return calculator.TokenizeString(src)
}
