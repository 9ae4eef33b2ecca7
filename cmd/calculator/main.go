package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/zephyrtronium/calculator"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("calculator: ")
	var (
		inname, confname string
		cfg              config
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&confname, "config", "", "YAML file with defaults for the other flags")
	flag.StringVar(&cfg.Format, "fmt", "%g", "result formatting string")
	flag.BoolVar(&cfg.Lines, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&cfg.Echo, "echo", false, "print expressions in postfix order")
	flag.BoolVar(&cfg.Assoc, "assoc", false, "group ^ and functions to the right")
	flag.Parse()

	if confname != "" {
		file, err := loadConfig(confname)
		if err != nil {
			log.Fatal(err)
		}
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		cfg = cfg.merge(file, set)
	}

	var exprs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		exprs, err = readExprs(f, cfg.Lines)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	exprs = append(exprs, flag.Args()...)

	if err := run(os.Stdout, exprs, cfg); err != nil {
		log.Fatal(err)
	}
}

// run evaluates each expression and writes its result or error to w, one per
// line. The returned error is from writing.
func run(w io.Writer, exprs []string, cfg config) error {
	var opts []calculator.ParseOption
	if cfg.Assoc {
		opts = append(opts, calculator.HonorAssociativity())
	}
	verb := cfg.Format + "\n"
	for _, s := range exprs {
		if cfg.Echo {
			// Parse errors are reported by Evaluate below.
			if e, err := calculator.ParseString(s, opts...); err == nil {
				if _, err := fmt.Fprintf(w, "%v : ", e); err != nil {
					return errors.Wrap(err, "writing output")
				}
			}
		}
		r, err := calculator.Evaluate(s, opts...)
		if err != nil {
			_, err = fmt.Fprintln(w, err)
		} else {
			_, err = fmt.Fprintf(w, verb, r)
		}
		if err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return nil
}

// readExprs reads expressions from r, either one per non-blank line or the
// entire input as one. Input with a UTF-16 byte order mark is decoded to
// UTF-8.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading input")
		}
		return []string{string(b)}, nil
	}
	var exprs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		exprs = append(exprs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return exprs, nil
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
