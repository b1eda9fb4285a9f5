// Package prompt implements line-oriented input collection for the
// airbook console. Each method re-prompts until the entered value
// satisfies its constraint; invalid input never escapes to the caller.
// The only error surfaced is a failed read (EOF, closed pipe), which
// aborts the enclosing operation instead of spinning on a dead stream.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Prompter reads validated values one line at a time.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	title cases.Caser
}

// New creates a Prompter over the given streams. Production code passes
// os.Stdin/os.Stdout; tests pass a strings.Reader and a bytes.Buffer.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		title: cases.Title(language.English),
	}
}

// readLine displays the label and reads one trimmed line.
func (p *Prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("input closed: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Line reads one raw line with no validation beyond trimming.
// Used for free-text fields such as review comments.
func (p *Prompter) Line(label string) (string, error) {
	return p.readLine(label)
}

// NonEmpty re-prompts until a non-empty value is entered.
func (p *Prompter) NonEmpty(label string) (string, error) {
	for {
		value, err := p.readLine(label)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		fmt.Fprintln(p.out, "A value is required.")
	}
}

// FixedLen re-prompts until a value of exactly n characters is entered.
func (p *Prompter) FixedLen(label string, n int) (string, error) {
	for {
		value, err := p.readLine(label)
		if err != nil {
			return "", err
		}
		if len(value) == n {
			return value, nil
		}
		fmt.Fprintf(p.out, "Invalid length, the value must be %d characters long.\n", n)
	}
}

// IntRange re-prompts until an integer in [lo, hi] is entered.
// Non-numeric input and out-of-range values are both recovered locally.
func (p *Prompter) IntRange(label string, lo, hi int) (int, error) {
	for {
		value, err := p.readLine(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < lo || n > hi {
			fmt.Fprintf(p.out, "Please enter a value between %d and %d.\n", lo, hi)
			continue
		}
		return n, nil
	}
}

// PositiveInt re-prompts until an integer >= 1 is entered.
// Used for "number of results" limits.
func (p *Prompter) PositiveInt(label string) (int, error) {
	for {
		value, err := p.readLine(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			fmt.Fprintln(p.out, "Please enter a positive number.")
			continue
		}
		return n, nil
	}
}

// TitleCase reads a non-empty value and title-cases each word.
// Names and countries are normalized this way so they compare cleanly
// against stored rows.
func (p *Prompter) TitleCase(label string) (string, error) {
	value, err := p.NonEmpty(label)
	if err != nil {
		return "", err
	}
	return p.title.String(value), nil
}

// Date collects month, day and year components and serializes them as
// m/d/y, the format the store keeps for bdate and departure columns.
// The noun ("your birth", "the departure") is spliced into each prompt.
func (p *Prompter) Date(noun string, yearMin, yearMax int) (string, error) {
	month, err := p.IntRange(fmt.Sprintf("Enter %s month: ", noun), 1, 12)
	if err != nil {
		return "", err
	}
	day, err := p.IntRange(fmt.Sprintf("Enter %s day: ", noun), 1, 31)
	if err != nil {
		return "", err
	}
	year, err := p.IntRange(fmt.Sprintf("Enter %s year: ", noun), yearMin, yearMax)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d/%d/%d", month, day, year), nil
}
