package masses

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

var (
	// ErrInvalidMass indicates a non-empty line that is not a base-10 integer.
	ErrInvalidMass = errors.New("mass must be a base-10 integer")
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// LineError reports a malformed line in a mass list.
type LineError struct {
	Line  int
	Text  string
	Cause error
}

func (e *LineError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("line %d: %v: %q", e.Line, ErrInvalidMass, e.Text)
	}
	return fmt.Sprintf("line %d: %v: %q: %v", e.Line, ErrInvalidMass, e.Text, e.Cause)
}

// Unwrap exposes both ErrInvalidMass and the strconv cause to errors.Is.
func (e *LineError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInvalidMass}
	}
	return []error{ErrInvalidMass, e.Cause}
}

// Load reads and parses the mass list stored at path.
func Load(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mass list: %w", err)
	}
	defer f.Close()

	masses, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return masses, nil
}

// Parse reads r to the end and returns one mass per non-empty line, in input order.
// Lines may end in \n, \r\n or \r. Every malformed line is reported.
func Parse(r io.Reader) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read mass list: %w", err)
	}
	return ParseString(string(data))
}

// ParseString is Parse for in-memory input.
func ParseString(raw string) ([]int, error) {
	lines := strings.Split(lineEndings.Replace(raw), "\n")
	out := make([]int, 0, len(lines))

	var errs error
	for idx, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			errs = multierr.Append(errs, &LineError{Line: idx + 1, Text: line, Cause: err})
			continue
		}
		out = append(out, value)
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// Format renders masses one per line, each terminated by \n.
func Format(masses []int) string {
	var b strings.Builder
	for _, mass := range masses {
		b.WriteString(strconv.Itoa(mass))
		b.WriteByte('\n')
	}
	return b.String()
}
