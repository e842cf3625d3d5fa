package vgplot

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Separator values returned by GetSeparator. Any other rune is a literal
// single-character delimiter.
const (
	NoSeparator rune = 0
	Whitespace  rune = ' '
)

// isNumberChar reports whether c can appear inside a plain or scientific
// number. 'd'/'D' are the Fortran exponent markers.
func isNumberChar(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '.' || c == '+' || c == '-':
		return true
	case c == 'e' || c == 'E' || c == 'd' || c == 'D':
		return true
	case c == ' ' || c == '\t':
		return true
	}
	return false
}

// GetSeparator infers the column delimiter of one line of a data file.
// It returns NoSeparator for a blank or comment-only line, Whitespace
// when the line holds data but no delimiter other than spaces and tabs,
// and the delimiter rune otherwise. The caller is expected to retry on
// the next line when NoSeparator comes back.
func GetSeparator(line string) rune {
	data := false
	for _, c := range line {
		if c == '#' {
			break
		}
		if c >= '0' && c <= '9' {
			data = true
			continue
		}
		if isNumberChar(c) {
			continue
		}
		return c
	}
	if data {
		return Whitespace
	}
	return NoSeparator
}

// CountColumns counts the non-empty fields of line before any '#'
// comment. Fields are split on sep plus always on spaces and tabs, so
// "1, 2, 3" with sep ',' still counts three. Empty fields between
// consecutive delimiters do not count.
func CountColumns(line string, sep rune) int {
	if i := strings.IndexByte(line, '#'); i != -1 {
		line = line[:i]
	}
	return len(strings.FieldsFunc(line, func(c rune) bool {
		return c == sep || c == ' ' || c == '\t'
	}))
}

// ParseLine extracts the numbers of one data line, splitting on sep plus
// whitespace and stopping at a '#' comment. Fortran style 'd'/'D'
// exponents are accepted.
func ParseLine(line string, sep rune) ([]float64, error) {
	if i := strings.IndexByte(line, '#'); i != -1 {
		line = line[:i]
	}
	fields := strings.FieldsFunc(line, func(c rune) bool {
		return c == sep || c == ' ' || c == '\t'
	})
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.Map(func(c rune) rune {
			if c == 'd' || c == 'D' {
				return 'e'
			}
			return c
		}, f)
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// scanFormat infers the delimiter and column count of a data file by
// scanning past leading comment and blank lines.
func scanFormat(path string) (sep rune, ncol int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return NoSeparator, 0, err
	}
	defer f.Close()

	sep = NoSeparator
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if sep == NoSeparator {
			sep = GetSeparator(line)
			if sep == NoSeparator {
				continue
			}
		}
		if ncol = CountColumns(line, sep); ncol > 0 {
			return sep, ncol, nil
		}
	}
	if err := sc.Err(); err != nil {
		return NoSeparator, 0, err
	}
	return NoSeparator, 0, configErrorf("%s holds no data", path)
}

// LoadDataFile reads a whole numeric text file into columns. The
// delimiter and the column count are inferred from the first data
// bearing line; comment and blank lines before it are skipped. Every
// following data line must have exactly the inferred column count or
// loading fails with a FormatError naming file and line.
func LoadDataFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		sep   = NoSeparator
		ncol  = 0
		cols  [][]float64
		sc    = bufio.NewScanner(f)
		nline = 0
	)
	for sc.Scan() {
		nline++
		line := sc.Text()
		if sep == NoSeparator {
			sep = GetSeparator(line)
			if sep == NoSeparator {
				continue // comment or blank, retry on next line
			}
		}
		if ncol == 0 {
			ncol = CountColumns(line, sep)
			if ncol == 0 {
				continue
			}
			cols = make([][]float64, ncol)
		}
		if CountColumns(line, sep) == 0 {
			continue
		}
		vals, err := ParseLine(line, sep)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, nline, err)
		}
		if len(vals) != ncol {
			return nil, &FormatError{File: path, Line: nline, Want: ncol, Got: len(vals)}
		}
		for i, v := range vals {
			cols[i] = append(cols[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cols, nil
}
