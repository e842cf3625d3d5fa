package vgplot

import (
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// quote escapes s for use inside a double quoted gnuplot string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// beginPlot prepares the active session for a fresh plot command. In
// single mode the files of the previous plot are deleted; in multiplot
// mode they accumulate until the session ends.
func (m *SessionManager) beginPlot() (*Session, error) {
	s, err := m.active()
	if err != nil {
		return nil, err
	}
	if s.state != stateMultiplot {
		s.files.clear()
	}
	return s, nil
}

// clause renders one SeriesRecord to a temp file and returns its
// fragment of the plot command.
func (s *Session) clause(rec SeriesRecord, style Style) (string, error) {
	cols := make([][]float64, 0, 3+len(rec.Aux))
	x := rec.X
	if x == nil {
		x = indexSeq(len(rec.Y))
	}
	cols = append(cols, x, rec.Y)
	if rec.Z != nil {
		cols = append(cols, rec.Z)
	}
	cols = append(cols, rec.Aux...)

	name, err := s.files.write(cols...)
	if err != nil {
		return "", err
	}
	using := "1:2"
	if rec.Z != nil {
		using = "1:2:3"
	}
	return fmt.Sprintf("%s using %s %s title %s",
		quote(name), using, style.gnuplot(), quote(style.Title)), nil
}

// drawRecords writes all records and issues one composite plot or
// splot command.
func (m *SessionManager) drawRecords(verb string, recs []SeriesRecord) error {
	if len(recs) == 0 {
		return configErrorf("nothing to plot")
	}
	s, err := m.beginPlot()
	if err != nil {
		return err
	}
	clauses := make([]string, 0, len(recs))
	for _, rec := range recs {
		style, err := ParseLabel(rec.Label)
		if err != nil {
			return err
		}
		cl, err := s.clause(rec, style)
		if err != nil {
			return err
		}
		clauses = append(clauses, cl)
	}
	_, err = m.query(verb + " " + strings.Join(clauses, ", "))
	return err
}

// Plot draws one or more 2-d curves. Arguments follow the grouped
// positional convention: a lone y sequence is drawn against its index,
// x,y pairs may be followed by a style/label string, and several such
// groups can be concatenated in one call:
//
//	m.Plot(y)
//	m.Plot(x, y, "r+;speed;", x2, y2, ";reference;")
func (m *SessionManager) Plot(args ...interface{}) error {
	vals, err := classifyAll(args)
	if err != nil {
		return err
	}
	recs, err := group2D(vals)
	if err != nil {
		return err
	}
	return m.drawRecords("plot", recs)
}

// Plot3D draws parametric 3-d curves from x,y,z triples with an
// optional trailing label per triple.
func (m *SessionManager) Plot3D(args ...interface{}) error {
	vals, err := classifyAll(args)
	if err != nil {
		return err
	}
	recs, err := group3D(vals)
	if err != nil {
		return err
	}
	return m.drawRecords("splot", recs)
}

// Surface draws z grids as surfaces. Arguments group like Plot except
// that the third element of a group is a 2-d grid: Surface(x, y, grid)
// or Surface(grid) with index axes.
func (m *SessionManager) Surface(args ...interface{}) error {
	vals, err := classifyAll(args)
	if err != nil {
		return err
	}
	// A bare grid gets index axes.
	if len(vals) >= 1 && vals[0].kind == kindGrid {
		g := vals[0].grid
		ny := 0
		if len(g) > 0 {
			ny = len(g[0])
		}
		vals = append([]value{
			{kind: kindSeries, series: indexSeq(len(g))},
			{kind: kindSeries, series: indexSeq(ny)},
		}, vals...)
	}
	recs, err := group2D(vals)
	if err != nil {
		return err
	}
	s, err := m.beginPlot()
	if err != nil {
		return err
	}
	clauses := make([]string, 0, len(recs))
	for _, rec := range recs {
		if rec.Grid == nil {
			return configErrorf("surface needs a 2-d grid of z values")
		}
		style, err := ParseLabel(rec.Label)
		if err != nil {
			return err
		}
		name, err := s.files.writeGrid(rec.X, rec.Y, rec.Grid)
		if err != nil {
			return err
		}
		clauses = append(clauses, fmt.Sprintf("%s using 1:2:3 %s title %s",
			quote(name), style.gnuplot(), quote(style.Title)))
	}
	_, err = m.query("splot " + strings.Join(clauses, ", "))
	return err
}

// Bar draws grouped bar charts. Width is the fraction of each category
// slot covered by the group of bars, gap the fraction left between
// bars inside a slot. Arguments group as x,y[,label] with a missing x
// materialized as the category indices. Series without an explicit
// style color take the default color cycle.
func (m *SessionManager) Bar(width, gap float64, args ...interface{}) error {
	if width <= 0 || width > 1 {
		return configErrorf("bar width %g outside (0, 1]", width)
	}
	vals, err := classifyAll(args)
	if err != nil {
		return err
	}
	recs, err := groupBar(vals)
	if err != nil {
		return err
	}
	n := len(recs)
	if n == 0 {
		return configErrorf("bar needs at least one series")
	}
	for _, rec := range recs[1:] {
		if len(rec.Y) != len(recs[0].Y) {
			return configErrorf("bar series lengths differ: %d vs %d",
				len(rec.Y), len(recs[0].Y))
		}
	}
	bw := (width - gap*float64(n-1)) / float64(n)
	if bw <= 0 {
		return configErrorf("bar gap %g leaves no room for %d series", gap, n)
	}

	s, err := m.beginPlot()
	if err != nil {
		return err
	}
	if err := m.send(fmt.Sprintf("set boxwidth %g", bw)); err != nil {
		return err
	}
	if err := m.send("set style fill solid 0.7"); err != nil {
		return err
	}
	clauses := make([]string, 0, n)
	for i, rec := range recs {
		style, err := ParseLabel(rec.Label)
		if err != nil {
			return err
		}
		with := "with boxes"
		if style.Raw != "" {
			with = style.Raw
		} else {
			if style.Color == nil {
				style.Color = plotutil.Color(i)
			}
			with += " lc rgb '" + colorSpec(style.Color) + "'"
		}
		// Shift each series to its slot inside the category.
		off := (float64(i) - float64(n-1)/2) * (bw + gap)
		x := make([]float64, len(rec.X))
		for j, v := range rec.X {
			x[j] = v + off
		}
		name, err := s.files.write(x, rec.Y)
		if err != nil {
			return err
		}
		clauses = append(clauses, fmt.Sprintf("%s using 1:2 %s title %s",
			quote(name), with, quote(style.Title)))
	}
	_, err = m.query("plot " + strings.Join(clauses, ", "))
	return err
}

// Stairs draws 2-d curves as zero-order-hold staircases. Arguments
// group exactly like Plot.
func (m *SessionManager) Stairs(args ...interface{}) error {
	vals, err := classifyAll(args)
	if err != nil {
		return err
	}
	recs, err := group2D(vals)
	if err != nil {
		return err
	}
	for i := range recs {
		if recs[i].X == nil {
			recs[i].X, recs[i].Y = StairstepIndexed(recs[i].Y)
		} else {
			recs[i].X, recs[i].Y = Stairstep(recs[i].X, recs[i].Y)
		}
	}
	return m.drawRecords("plot", recs)
}

// SubplotGrid selects panel index of a rows x cols grid, counting
// row-major from the top left. The first call switches the session
// into multiplot mode, which lasts until the session is closed.
func (m *SessionManager) SubplotGrid(rows, cols, index int) error {
	if index < 0 || index >= rows*cols {
		return &OutOfBoundsError{Index: index, Rows: rows, Cols: cols}
	}
	s, err := m.active()
	if err != nil {
		return err
	}
	if s.state != stateMultiplot {
		if err := m.send("set multiplot"); err != nil {
			return err
		}
		s.state = stateMultiplot
	}
	row, col := index/cols, index%cols
	sx, sy := 1/float64(cols), 1/float64(rows)
	ox, oy := float64(col)*sx, 1-float64(row+1)*sy
	if err := m.send(fmt.Sprintf("set size %g,%g", sx, sy)); err != nil {
		return err
	}
	return m.send(fmt.Sprintf("set origin %g,%g", ox, oy))
}

// -------------------------------------------------------------------------
// Axis limits

type limitKind int

const (
	limitKeep limitKind = iota
	limitFixed
	limitAuto
)

// Limit is one bound of an axis range. The zero value keeps the
// current bound.
type Limit struct {
	kind  limitKind
	value float64
}

// Fixed pins a bound to v.
func Fixed(v float64) Limit { return Limit{kind: limitFixed, value: v} }

// Auto lets gnuplot autoscale the bound.
func Auto() Limit { return Limit{kind: limitAuto} }

// Keep leaves the bound as it currently is.
func Keep() Limit { return Limit{} }

var rangeRe = regexp.MustCompile(`\[\s*([^:\s\]]+)\s*:\s*([^\s\]]+)\s*\]`)

// parseRange extracts the min/max around the colon of a gnuplot range
// reply like "set xrange [ 0.0 : 10.0 ] noreverse". An autoscaled or
// unparsable bound comes back as NaN.
func parseRange(reply string) (min, max float64) {
	min, max = math.NaN(), math.NaN()
	sub := rangeRe.FindStringSubmatch(reply)
	if sub == nil {
		return
	}
	if v, err := strconv.ParseFloat(sub[1], 64); err == nil {
		min = v
	}
	if v, err := strconv.ParseFloat(sub[2], 64); err == nil {
		max = v
	}
	return
}

// AxisLimits queries the current x and y ranges. Autoscaled bounds are
// reported as NaN.
func (m *SessionManager) AxisLimits() (xmin, xmax, ymin, ymax float64, err error) {
	reply, err := m.query("show xrange")
	if err != nil {
		return
	}
	xmin, xmax = parseRange(reply)
	reply, err = m.query("show yrange")
	if err != nil {
		return
	}
	ymin, ymax = parseRange(reply)
	return
}

func limitSpec(l Limit, current float64) string {
	switch l.kind {
	case limitFixed:
		return strconv.FormatFloat(l.value, 'g', -1, 64)
	case limitAuto:
		return "*"
	}
	if math.IsNaN(current) {
		return "*"
	}
	return strconv.FormatFloat(current, 'g', -1, 64)
}

// SetAxisLimits sets the x and y ranges. Each bound is either Fixed,
// Auto or Keep; Keep bounds are resolved by querying the subprocess
// first, so the other bounds survive the update.
func (m *SessionManager) SetAxisLimits(xmin, xmax, ymin, ymax Limit) error {
	var cxmin, cxmax, cymin, cymax float64
	if xmin.kind == limitKeep || xmax.kind == limitKeep ||
		ymin.kind == limitKeep || ymax.kind == limitKeep {
		var err error
		cxmin, cxmax, cymin, cymax, err = m.AxisLimits()
		if err != nil {
			return err
		}
	}
	cmd := fmt.Sprintf("set xrange [%s:%s]",
		limitSpec(xmin, cxmin), limitSpec(xmax, cxmax))
	if err := m.send(cmd); err != nil {
		return err
	}
	cmd = fmt.Sprintf("set yrange [%s:%s]",
		limitSpec(ymin, cymin), limitSpec(ymax, cymax))
	if err := m.send(cmd); err != nil {
		return err
	}
	return m.redraw()
}

// -------------------------------------------------------------------------
// Legend, text, labels

// SetLegend configures the plot key from a flat token list. Recognized
// tokens are show, hide, box, nobox, left, right, top, bottom, center
// and "at" followed by two numbers:
//
//	m.SetLegend("show", "box", "left", "bottom")
//	m.SetLegend("at", "0.5", "0.9")
func (m *SessionManager) SetLegend(options ...string) error {
	frags := []string{"set key"}
	for i := 0; i < len(options); i++ {
		switch options[i] {
		case "show":
			frags = append(frags, "on")
		case "hide":
			frags = append(frags, "off")
		case "box", "nobox", "left", "right", "top", "bottom", "center":
			frags = append(frags, options[i])
		case "at":
			if i+2 >= len(options) {
				return configErrorf("legend option \"at\" needs two coordinates")
			}
			x, errx := strconv.ParseFloat(options[i+1], 64)
			y, erry := strconv.ParseFloat(options[i+2], 64)
			if errx != nil || erry != nil {
				return configErrorf("legend position %q %q is not numeric",
					options[i+1], options[i+2])
			}
			frags = append(frags, fmt.Sprintf("at %g,%g", x, y))
			i += 2
		default:
			return &UnrecognizedOptionError{Option: options[i]}
		}
	}
	if err := m.send(strings.Join(frags, " ")); err != nil {
		return err
	}
	return m.redraw()
}

// SetText places text with the given tag at plot coordinates x,y. The
// tag can be reused to move the text or passed to RemoveText.
func (m *SessionManager) SetText(tag int, x, y float64, text string) error {
	if err := m.send(fmt.Sprintf("set label %d %s at %g,%g", tag, quote(text), x, y)); err != nil {
		return err
	}
	return m.redraw()
}

// RemoveText removes the text placed under tag.
func (m *SessionManager) RemoveText(tag int) error {
	if err := m.send(fmt.Sprintf("unset label %d", tag)); err != nil {
		return err
	}
	return m.redraw()
}

// SetTitle sets the plot title.
func (m *SessionManager) SetTitle(title string) error {
	if err := m.send("set title " + quote(title)); err != nil {
		return err
	}
	return m.redraw()
}

// SetXLabel labels the x axis.
func (m *SessionManager) SetXLabel(label string) error {
	return m.setAxisLabel("xlabel", label)
}

// SetYLabel labels the y axis.
func (m *SessionManager) SetYLabel(label string) error {
	return m.setAxisLabel("ylabel", label)
}

// SetZLabel labels the z axis of 3-d plots.
func (m *SessionManager) SetZLabel(label string) error {
	return m.setAxisLabel("zlabel", label)
}

func (m *SessionManager) setAxisLabel(axis, label string) error {
	if err := m.send("set " + axis + " " + quote(label)); err != nil {
		return err
	}
	return m.redraw()
}

// SetGrid switches the background grid on or off.
func (m *SessionManager) SetGrid(on bool) error {
	cmd := "set grid"
	if !on {
		cmd = "unset grid"
	}
	if err := m.send(cmd); err != nil {
		return err
	}
	return m.redraw()
}

// Raw sends one verbatim command and returns whatever reply arrived
// within the drain timeout.
func (m *SessionManager) Raw(cmd string) (string, error) {
	return m.query(cmd)
}

// -------------------------------------------------------------------------
// Data files

// IngestDataFile loads a numeric text file into columns, inferring the
// delimiter and arity from its first data line.
func (m *SessionManager) IngestDataFile(path string) ([][]float64, error) {
	return LoadDataFile(path)
}

// PlotDataFile plots a data file directly, one curve per column. With
// xcol >= 0 that column is the shared x axis; otherwise curves are
// drawn against the row index.
func (m *SessionManager) PlotDataFile(path string, xcol int) error {
	sep, ncol, err := scanFormat(path)
	if err != nil {
		return err
	}
	if xcol >= ncol {
		return configErrorf("x column %d outside the %d columns of %s", xcol, ncol, path)
	}
	if sep != Whitespace {
		if err := m.send(fmt.Sprintf("set datafile separator %q", string(sep))); err != nil {
			return err
		}
	}
	if _, err := m.beginPlot(); err != nil {
		return err
	}
	xuse := "0" // gnuplot pseudo column: the record index
	if xcol >= 0 {
		xuse = strconv.Itoa(xcol + 1)
	}
	clauses := make([]string, 0, ncol)
	for j := 0; j < ncol; j++ {
		if j == xcol {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s using %s:%d with lines title %s",
			quote(path), xuse, j+1, quote(fmt.Sprintf("column %d", j+1))))
	}
	if _, err := m.query("plot " + strings.Join(clauses, ", ")); err != nil {
		return err
	}
	if sep != Whitespace {
		// The separator is session state; later plots read
		// whitespace separated temp files again.
		return m.send("set datafile separator whitespace")
	}
	return nil
}

// -------------------------------------------------------------------------
// Export

var terminals = map[string]string{
	"png":  "pngcairo",
	"svg":  "svg",
	"pdf":  "pdfcairo",
	"eps":  "epscairo",
	"gif":  "gif",
	"jpg":  "jpeg",
	"jpeg": "jpeg",
	"tex":  "cairolatex",
}

// Export redraws the current plot into a file. The terminal is guessed
// from the filename extension unless format names one explicitly.
// Width and height are optional (zero keeps the terminal default) and
// are given in vg units, e.g. 10*vg.Centimeter.
func (m *SessionManager) Export(path, format string, w, h vg.Length) error {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	term, ok := terminals[strings.ToLower(format)]
	if !ok {
		return &MissingCapabilityError{Path: path}
	}
	if err := m.send("set terminal push"); err != nil {
		return err
	}
	cmd := "set terminal " + term
	if w > 0 && h > 0 {
		cmd += fmt.Sprintf(" size %d,%d", int(w.Points()), int(h.Points()))
	}
	for _, c := range []string{cmd, "set output " + quote(path), "replot",
		"unset output", "set terminal pop"} {
		if err := m.send(c); err != nil {
			return err
		}
	}
	return nil
}
