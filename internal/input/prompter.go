package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
)

// Prompter asks for each value on a line-oriented text channel
type Prompter struct {
	in   *bufio.Reader
	out  io.Writer
	mode Mode
	log  logr.Logger
}

// NewPrompter creates a prompter reading answers from in and writing prompts to out
func NewPrompter(in io.Reader, out io.Writer, mode Mode) *Prompter {
	if out == nil {
		out = io.Discard
	}
	return &Prompter{
		in:   bufio.NewReader(in),
		out:  out,
		mode: mode,
		log:  logr.Discard(),
	}
}

// NewScripted creates a prompter that answers from a fixed list of lines.
// Prompts beyond the end of the list receive the field default.
func NewScripted(answers []string, out io.Writer, mode Mode) *Prompter {
	return NewPrompter(strings.NewReader(strings.Join(answers, "\n")), out, mode)
}

// WithLogger sets the logger used for debug tracing
func (p *Prompter) WithLogger(log logr.Logger) *Prompter {
	p.log = log
	return p
}

// Float prints "<prompt> [e.g., <default>]: " and reads one answer.
// An empty line or end of input yields the default.
func (p *Prompter) Float(f Field) (float64, error) {
	fmt.Fprintf(p.out, "%s [e.g., %s]: ", f.Prompt, FormatDefault(f.Default))

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("reading %s: %w", f.Key, err)
	}
	line = strings.TrimRight(line, "\r\n")

	if line == "" {
		p.log.V(1).Info("Using default value", "field", f.Key, "value", f.Default)
		return f.Default, nil
	}

	v, err := ParseFloat(line)
	if err != nil {
		return p.reject(f, line, ErrInvalidInput, "Invalid input")
	}
	if !f.Constraint.Allows(v) {
		return p.reject(f, line, ErrOutOfRange, "Out of range input")
	}

	p.log.V(1).Info("Accepted value", "field", f.Key, "value", v)
	return v, nil
}

func (p *Prompter) reject(f Field, raw string, cause error, label string) (float64, error) {
	if p.mode == Strict {
		return 0, &InputError{Key: f.Key, Raw: raw, Err: cause}
	}
	fmt.Fprintf(p.out, "%s. Using default value: %s\n", label, FormatDefault(f.Default))
	p.log.V(1).Info("Rejected input, using default", "field", f.Key, "input", raw, "reason", cause.Error(), "default", f.Default)
	return f.Default, nil
}
