package vgplot

import (
	"image/color"
	"testing"
)

func TestParseLabelModes(t *testing.T) {
	tests := []struct {
		s    string
		mode DrawMode
	}{
		{"-;T;", Lines},
		{":;T;", Dotted},
		{".;T;", Dots},
		{"+;T;", Points},
		{"o;T;", Circles},
		{";T;", Lines}, // default
	}

	for i, tc := range tests {
		got, err := ParseLabel(tc.s)
		if err != nil {
			t.Fatalf("%d %q: unexpected error %s", i, tc.s, err)
		}
		if got.Mode != tc.mode {
			t.Errorf("%d %q: got mode %s, want %s", i, tc.s, got.Mode, tc.mode)
		}
		if got.Title != "T" {
			t.Errorf("%d %q: got title %q, want \"T\"", i, tc.s, got.Title)
		}
	}
}

func TestParseLabelColors(t *testing.T) {
	tests := []struct {
		s string
		c color.RGBA
	}{
		{"r;T;", color.RGBA{0xff, 0x00, 0x00, 0xff}},
		{"g;T;", color.RGBA{0x00, 0xff, 0x00, 0xff}},
		{"b;T;", color.RGBA{0x00, 0x00, 0xff, 0xff}},
		{"k;T;", color.RGBA{0x00, 0x00, 0x00, 0xff}},
		{"#ff00ff;T;", color.RGBA{0xff, 0x00, 0xff, 0xff}},
		{"#1256ab;T;", color.RGBA{0x12, 0x56, 0xab, 0xff}},
		{"rb;T;", color.RGBA{0x00, 0x00, 0xff, 0xff}}, // last write wins
		{"r#00ff00;T;", color.RGBA{0x00, 0xff, 0x00, 0xff}},
	}

	for i, tc := range tests {
		got, err := ParseLabel(tc.s)
		if err != nil {
			t.Fatalf("%d %q: unexpected error %s", i, tc.s, err)
		}
		if got.Color != tc.c {
			t.Errorf("%d %q: got color %v, want %v", i, tc.s, got.Color, tc.c)
		}
	}
}

func TestParseLabelCombined(t *testing.T) {
	got, err := ParseLabel("r+;speed;")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if got.Mode != Points {
		t.Errorf("got mode %s, want points", got.Mode)
	}
	if got.Color != (color.RGBA{0xff, 0x00, 0x00, 0xff}) {
		t.Errorf("got color %v, want red", got.Color)
	}
	if got.Title != "speed" {
		t.Errorf("got title %q, want \"speed\"", got.Title)
	}
}

func TestParseLabelRawOverride(t *testing.T) {
	got, err := ParseLabel("r+;T;with points")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if got.Raw != "with points" {
		t.Errorf("got raw %q, want \"with points\"", got.Raw)
	}
	if got.Title != "T" {
		t.Errorf("got title %q, want \"T\"", got.Title)
	}
	if got.gnuplot() != "with points" {
		t.Errorf("raw override not used: %q", got.gnuplot())
	}

	// The override wins even over style characters that would not parse.
	got, err = ParseLabel("zzz;T;with impulses")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if got.Raw != "with impulses" {
		t.Errorf("got raw %q, want \"with impulses\"", got.Raw)
	}
}

func TestParseLabelDegenerate(t *testing.T) {
	// A single semicolon: everything after it is the title.
	got, err := ParseLabel("r;half open")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if got.Title != "half open" {
		t.Errorf("got title %q, want \"half open\"", got.Title)
	}

	// Empty input yields the default style.
	got, err = ParseLabel("")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if got.Mode != Lines || got.Color != nil || got.Title != "" || got.Raw != "" {
		t.Errorf("got %+v, want zero style with lines mode", got)
	}
}

func TestParseLabelErrors(t *testing.T) {
	for i, s := range []string{"xyz;T;", "q", "#12;T;", "#12345"} {
		_, err := ParseLabel(s)
		if err == nil {
			t.Errorf("%d %q: expected a parse error", i, s)
			continue
		}
		if _, ok := err.(*ParseError); !ok {
			t.Errorf("%d %q: got %T, want *ParseError", i, s, err)
		}
	}
}

func TestStyleGnuplot(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", "with lines"},
		{"r", "with lines lc rgb '#ff0000'"},
		{"+", "with points"},
		{":g", "with lines dashtype 3 lc rgb '#00ff00'"},
		{";T;with impulses", "with impulses"},
	}
	for i, tc := range tests {
		style, err := ParseLabel(tc.s)
		if err != nil {
			t.Fatalf("%d %q: unexpected error %s", i, tc.s, err)
		}
		if got := style.gnuplot(); got != tc.want {
			t.Errorf("%d %q: got %q, want %q", i, tc.s, got, tc.want)
		}
	}
}
