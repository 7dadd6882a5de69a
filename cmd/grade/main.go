// Command grade scores a DAX snippet against one day of the curriculum
// without running the server.
//
// Usage:
//
//	grade -day 3 -file answer.dax
//	cat answer.dax | grade -day 3 -json
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/dax-daily/internal/curriculum"
	"github.com/phrazzld/dax-daily/internal/domain/validation"
)

// Exit codes.
const (
	exitPass  = 0
	exitFail  = 1
	exitUsage = 2
)

type options struct {
	day         int
	file        string
	catalogPath string
	jsonOutput  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run grades one submission. It exits 0 when the answer passes, 1 when it
// does not and 2 for usage or input errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitPass
		}
		return exitUsage
	}

	catalog, err := curriculum.Load(opts.catalogPath)
	if err != nil {
		fmt.Fprintf(stderr, "grade: %v\n", err)
		return exitUsage
	}

	challenge, err := catalog.Challenge(opts.day)
	if err != nil {
		fmt.Fprintf(stderr, "grade: day %d: %v (course has %d days)\n", opts.day, err, catalog.TotalDays())
		return exitUsage
	}

	submission, err := readSubmission(opts.file, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "grade: %v\n", err)
		return exitUsage
	}

	verdict := validation.Evaluate(submission, challenge.Solution, challenge.ValidationRules)

	if opts.jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(verdict); err != nil {
			fmt.Fprintf(stderr, "grade: %v\n", err)
			return exitUsage
		}
	} else {
		printVerdict(stdout, opts.day, challenge.Title, verdict)
	}

	if verdict.Pass {
		return exitPass
	}
	return exitFail
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("grade", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.day, "day", 0, "course day to grade against (required)")
	fs.StringVar(&opts.file, "file", "", "file holding the submission; stdin when empty or -")
	fs.StringVar(&opts.catalogPath, "catalog", "", "curriculum file; the built-in course when empty")
	fs.BoolVar(&opts.jsonOutput, "json", false, "print the verdict as JSON")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.day < 1 {
		fmt.Fprintln(stderr, "grade: -day must be a positive day number")
		fs.Usage()
		return options{}, errors.New("missing -day")
	}
	return opts, nil
}

func readSubmission(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read submission: %w", err)
	}
	return string(b), nil
}

func printVerdict(w io.Writer, day int, title string, v validation.Verdict) {
	status := "FAIL"
	if v.Pass {
		status = "PASS"
	}

	fmt.Fprintf(w, "Day %d: %s\n", day, title)
	fmt.Fprintf(w, "%s  score %d/100 (patterns %d, keywords %d)\n", status, v.Score, v.RuleScore, v.Similarity)
	fmt.Fprintln(w, v.Feedback)

	if len(v.RuleDetails) > 0 {
		fmt.Fprintln(w)
		for _, d := range v.RuleDetails {
			mark := "[ ]"
			if d.Passed {
				mark = "[x]"
			}
			fmt.Fprintf(w, "  %s %s\n", mark, d.Pattern)
		}
	}

	if len(v.Improvements) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.Join(v.Improvements, "\n"))
	}
}
