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
	"time"

	"github.com/zephyrtronium/polish"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run runs the calculator and returns the exit code: 0 if every expression
// evaluated, 1 if any failed, and 2 for usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		src, verb, logname string
		prec               int
		echo, debug        bool
	)
	fs := flag.NewFlagSet("polish", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&src, "e", "", "expression to evaluate")
	fs.StringVar(&src, "expression", "", "expression to evaluate (same as -e)")
	fs.StringVar(&verb, "fmt", "%v", "result formatting string")
	fs.IntVar(&prec, "p", 64, "precision of floating-point calculations in bits")
	fs.BoolVar(&echo, "echo", false, "print token sequences")
	fs.BoolVar(&debug, "v", false, "log each reduction step")
	fs.StringVar(&logname, "log", "", "also write JSON logs to this file")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: polish [flags] [expression ...]")
		fmt.Fprintln(fs.Output(), "Evaluates arithmetic expressions in prefix notation, e.g. \"+ - 4 1 3\".")
		fmt.Fprintln(fs.Output(), "With no -e and no arguments, each line of stdin is an expression.")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if prec < 0 {
		fmt.Fprintf(stderr, "precision (%d) must be positive\n", prec)
		return 2
	}

	logger, closelog, err := newLogger(stderr, logname, debug)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer closelog()
	start := time.Now()
	logger.Info("execution started")
	defer func() {
		logger.Info("execution ended", slog.Duration("elapsed", time.Since(start)))
	}()

	var srcs []string
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "e" || f.Name == "expression" {
			srcs = []string{src}
		}
	})
	srcs = append(srcs, fs.Args()...)
	if len(srcs) == 0 {
		lines, err := readLines(bufio.NewReader(stdin))
		if err != nil {
			logger.Error("reading expressions", slog.Any("error", err))
			return 1
		}
		srcs = lines
	}

	code := 0
	verb += "\n"
	for _, s := range srcs {
		opts := []polish.Option{polish.Prec(uint(prec))}
		if debug {
			opts = append(opts, polish.Observe(stepLogger(logger, s)))
		}
		e := polish.New(s, opts...)
		if echo {
			fmt.Fprintf(stdout, "%v : ", e.Tokens())
		}
		r, err := e.Eval()
		if err != nil {
			logger.Error("evaluation failed", slog.String("expression", s), slog.Any("error", err))
			fmt.Fprintln(stdout, err)
			code = 1
			continue
		}
		logger.Info("result", slog.String("expression", s), slog.String("value", r.String()))
		fmt.Fprintf(stdout, verb, r)
	}
	return code
}

// readLines reads every non-blank line from in. Lines may be any length.
func readLines(in *bufio.Reader) ([]string, error) {
	var lines []string
	for {
		line, err := in.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return lines, err
		}
	}
}
