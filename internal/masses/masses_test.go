package masses

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestParseStringLineEndings(t *testing.T) {
	t.Parallel()

	want := []int{12, 14, 1969, 100756}

	tests := []struct {
		name  string
		input string
	}{
		{name: "Unix", input: "12\n14\n1969\n100756"},
		{name: "TrailingNewline", input: "12\n14\n1969\n100756\n"},
		{name: "Windows", input: "12\r\n14\r\n1969\r\n100756\r\n"},
		{name: "ClassicMac", input: "12\r14\r1969\r100756"},
		{name: "Mixed", input: "12\r\n14\n1969\r100756"},
		{name: "PaddedAndBlankLines", input: "\n  12 \n\t14\n\n 1969\t\n100756\n\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseString(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, want) {
				t.Fatalf("expected %v, got %v", want, got)
			}
		})
	}
}

func TestParseStringEmptyInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "\n", " \r\n \r "} {
		got, err := ParseString(input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil list for %q, got %#v", input, got)
		}
	}
}

func TestParseStringSignedValues(t *testing.T) {
	t.Parallel()

	got, err := ParseString("-5\n+7\n0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{-5, 7, 0}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseStringReportsEveryMalformedLine(t *testing.T) {
	t.Parallel()

	_, err := ParseString("12\nabc\n14\n1.5\n\n0x10\n")
	if !errors.Is(err, ErrInvalidMass) {
		t.Fatalf("expected ErrInvalidMass, got %v", err)
	}

	errs := multierr.Errors(err)
	if len(errs) != 3 {
		t.Fatalf("expected 3 line errors, got %d: %v", len(errs), err)
	}

	wantLines := []int{2, 4, 6}
	for i, e := range errs {
		var lineErr *LineError
		if !errors.As(e, &lineErr) {
			t.Fatalf("expected *LineError, got %T", e)
		}
		if lineErr.Line != wantLines[i] {
			t.Fatalf("expected line %d, got %d", wantLines[i], lineErr.Line)
		}
		if lineErr.Cause == nil {
			t.Fatalf("expected underlying cause for line %d", lineErr.Line)
		}
	}
	if !strings.Contains(err.Error(), `"abc"`) {
		t.Fatalf("expected offending text in message, got %q", err.Error())
	}
}

func TestParseStringKeepsConversionCause(t *testing.T) {
	t.Parallel()

	_, err := ParseString("12\n99999999999999999999999\n")
	if !errors.Is(err, ErrInvalidMass) {
		t.Fatalf("expected ErrInvalidMass, got %v", err)
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Fatalf("expected strconv.ErrRange, got %v", err)
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected range cause in message, got %q", err.Error())
	}

	_, err = ParseString("seven\n")
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("expected strconv.ErrSyntax, got %v", err)
	}
}

func TestParseReader(t *testing.T) {
	t.Parallel()

	got, err := Parse(strings.NewReader("3\r\n9\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{3, 9}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	lists := [][]int{
		{},
		{12},
		{12, 14, 1969, 100756},
		{5, 5, -3, 0, 5},
	}

	for _, list := range lists {
		text := Format(list)
		got, err := ParseString(text)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", list, err)
		}
		if !slices.Equal(got, list) {
			t.Fatalf("round trip changed %v into %v", list, got)
		}
	}

	if got := Format([]int{1, 2}); got != "1\n2\n" {
		t.Fatalf("unexpected format output %q", got)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("12\n14\n1969\n100756\n"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{12, 14, 1969, 100756}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("12\nfourteen\n"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidMass) {
		t.Fatalf("expected ErrInvalidMass, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %q", err.Error())
	}
}
