package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode selects what a provider does with input it cannot use
type Mode int

const (
	// Lenient substitutes the field default and prints a warning
	Lenient Mode = iota
	// Strict returns an *InputError
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// Constraint restricts the accepted range of a field
type Constraint int

const (
	Any Constraint = iota
	Positive
	NonNegative
)

// Allows reports whether v satisfies the constraint
func (c Constraint) Allows(v float64) bool {
	switch c {
	case Positive:
		return v > 0
	case NonNegative:
		return v >= 0
	default:
		return true
	}
}

// Field describes one numeric quantity to acquire
type Field struct {
	Key        string // e.g. "aileron.span"
	Prompt     string // e.g. "Aileron span in meters"
	Default    float64
	Constraint Constraint
}

// Provider supplies numeric values for named fields
type Provider interface {
	Float(f Field) (float64, error)
}

var (
	ErrInvalidInput = errors.New("input is not a number")
	ErrOutOfRange   = errors.New("input is out of range")
)

// InputError is returned by strict providers
type InputError struct {
	Key string
	Raw string
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v: %q", e.Key, e.Err, e.Raw)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ParseFloat parses a finite float64, ignoring surrounding whitespace
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrInvalidInput
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidInput
	}
	return v, nil
}

// FormatDefault renders v the way prompts show defaults: shortest form,
// with ".0" kept on integral values (18.0, 0.11, -0.15).
func FormatDefault(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(v, 0) && !math.IsNaN(v) {
		s += ".0"
	}
	return s
}

// Defaults returns every field's default without any I/O
type Defaults struct{}

func (Defaults) Float(f Field) (float64, error) {
	return f.Default, nil
}

// Preset answers fields from a fixed set of values and delegates the rest to Next
type Preset struct {
	Values map[string]float64
	Next   Provider
}

func (p Preset) Float(f Field) (float64, error) {
	if v, ok := p.Values[f.Key]; ok {
		if !f.Constraint.Allows(v) {
			return 0, &InputError{Key: f.Key, Raw: FormatDefault(v), Err: ErrOutOfRange}
		}
		return v, nil
	}
	if p.Next == nil {
		return f.Default, nil
	}
	return p.Next.Float(f)
}

// ParseValues converts key=value strings (as given to --set) into presets
func ParseValues(raw map[string]string) (map[string]float64, error) {
	out := make(map[string]float64, len(raw))
	for k, s := range raw {
		v, err := ParseFloat(s)
		if err != nil {
			return nil, &InputError{Key: k, Raw: s, Err: err}
		}
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out, nil
}
