package vgplot

import (
	"image/color"
	"strconv"
	"strings"
)

// -------------------------------------------------------------------------
// Draw modes

type DrawMode int

const (
	Lines DrawMode = iota
	Dotted
	Dots
	Points
	Circles
)

func (m DrawMode) String() string {
	switch m {
	case Lines:
		return "lines"
	case Dotted:
		return "dotted"
	case Dots:
		return "dots"
	case Points:
		return "points"
	case Circles:
		return "circles"
	}
	return "lines"
}

// gnuplot returns the style part of a "with ..." clause for m.
func (m DrawMode) gnuplot() string {
	switch m {
	case Dotted:
		return "lines dashtype 3"
	case Dots:
		return "dots"
	case Points:
		return "points"
	case Circles:
		return "circles"
	}
	return "lines"
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[rune]color.RGBA{
	'r': {0xff, 0x00, 0x00, 0xff},
	'g': {0x00, 0xff, 0x00, 0xff},
	'b': {0x00, 0x00, 0xff, 0xff},
	'c': {0x00, 0xff, 0xff, 0xff},
	'm': {0xff, 0x00, 0xff, 0xff},
	'y': {0xff, 0xff, 0x00, 0xff},
	'k': {0x00, 0x00, 0x00, 0xff},
	'w': {0xff, 0xff, 0xff, 0xff},
}

// colorSpec formats c the way gnuplot wants it in a linecolor clause.
func colorSpec(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return "#" + hex2(uint8(r>>8)) + hex2(uint8(g>>8)) + hex2(uint8(b>>8))
}

func hex2(v uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4], digits[v&0x0f]})
}

// -------------------------------------------------------------------------
// Style strings

// Style is the resolved rendering directive for one series.
// A non-empty Raw replaces Mode and Color entirely.
type Style struct {
	Mode  DrawMode
	Color color.Color // nil selects the gnuplot default
	Title string
	Raw   string
}

// gnuplot renders the "with ..." part of a plot clause.
func (s Style) gnuplot() string {
	if s.Raw != "" {
		return s.Raw
	}
	w := "with " + s.Mode.gnuplot()
	if s.Color != nil {
		w += " lc rgb '" + colorSpec(s.Color) + "'"
	}
	return w
}

// ParseLabel parses the compact style/label mini-language.
//
// The accepted shapes are "styles", ";title;" and "styles;title;raw".
// Style characters before the first semicolon set the draw mode
// (- : . + o) or the color (r g b c m y k w), later characters winning
// within a category. A '#' consumes the following six characters as a
// hex RGB literal. Non-whitespace text after the last semicolon is used
// verbatim instead of any style characters.
func ParseLabel(label string) (Style, error) {
	style := Style{Mode: Lines}

	chars := label
	first := strings.IndexByte(label, ';')
	if first != -1 {
		chars = label[:first]
		last := strings.LastIndexByte(label, ';')
		if last == first {
			// Degenerate: a single semicolon, everything after is title.
			style.Title = label[first+1:]
		} else {
			style.Title = label[first+1 : last]
			if rest := strings.TrimSpace(label[last+1:]); rest != "" {
				style.Raw = rest
				return style, nil
			}
		}
	}

	const (
		stateNormal = iota
		stateRGB
	)
	state := stateNormal
	var rgb []rune
	for i, c := range chars {
		switch state {
		case stateNormal:
			switch c {
			case '-':
				style.Mode = Lines
			case ':':
				style.Mode = Dotted
			case '.':
				style.Mode = Dots
			case '+':
				style.Mode = Points
			case 'o':
				style.Mode = Circles
			case '#':
				state = stateRGB
				rgb = rgb[:0]
			default:
				if col, ok := BuiltinColors[c]; ok {
					style.Color = col
					break
				}
				return Style{}, &ParseError{Input: label, Pos: i, Char: c}
			}
		case stateRGB:
			rgb = append(rgb, c)
			if len(rgb) == 6 {
				v, err := strconv.ParseUint(string(rgb), 16, 32)
				if err != nil {
					return Style{}, &ParseError{Input: label, Pos: i, Char: c}
				}
				style.Color = color.RGBA{
					R: uint8(v >> 16),
					G: uint8(v >> 8),
					B: uint8(v),
					A: 0xff,
				}
				state = stateNormal
			}
		}
	}
	if state == stateRGB {
		return Style{}, &ParseError{Input: label, Pos: len(chars) - 1, Char: '#'}
	}

	return style, nil
}
