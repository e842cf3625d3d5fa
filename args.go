package vgplot

// SeriesRecord is one curve, surface or bar group ready to render.
// A nil X means "plot against the sample index"; the data writer
// materializes 0..len(Y)-1 when the file is produced.
type SeriesRecord struct {
	X, Y, Z []float64
	Grid    [][]float64 // surfaces only
	Aux     [][]float64 // extra columns of the extended call forms
	Label   string      // raw style+title string, parsed later
}

func isSeries(vals []value, i int) bool {
	return i < len(vals) && vals[i].kind == kindSeries
}

func isGrid(vals []value, i int) bool {
	return i < len(vals) && vals[i].kind == kindGrid
}

func isLabel(vals []value, i int) bool {
	return i < len(vals) && vals[i].kind == kindLabel
}

// group2D classifies a flat 2-d argument list into per-series records.
// The cases are tried most-specific first so that terse calls like
// plot(y) and verbose ones like plot(x,y,"l",x2,y2,"l2") both resolve;
// call sites depend on this exact precedence.
func group2D(vals []value) ([]SeriesRecord, error) {
	var recs []SeriesRecord
	for len(vals) > 0 {
		switch {
		case isLabel(vals, 5) && isSeries(vals, 2) && isSeries(vals, 0) &&
			isSeries(vals, 1) && isSeries(vals, 3) && isSeries(vals, 4):
			// Extended 6-value form: x y and three extra columns.
			recs = append(recs, SeriesRecord{
				X: vals[0].series, Y: vals[1].series,
				Aux:   [][]float64{vals[2].series, vals[3].series, vals[4].series},
				Label: vals[5].label,
			})
			vals = vals[6:]
		case isLabel(vals, 4) && isSeries(vals, 0) && isSeries(vals, 1) &&
			isSeries(vals, 2) && isSeries(vals, 3):
			recs = append(recs, SeriesRecord{
				X: vals[0].series, Y: vals[1].series,
				Aux:   [][]float64{vals[2].series, vals[3].series},
				Label: vals[4].label,
			})
			vals = vals[5:]
		case isLabel(vals, 3) && isSeries(vals, 0) && isSeries(vals, 1) &&
			isSeries(vals, 2):
			recs = append(recs, SeriesRecord{
				X: vals[0].series, Y: vals[1].series,
				Aux:   [][]float64{vals[2].series},
				Label: vals[3].label,
			})
			vals = vals[4:]
		case isGrid(vals, 2) && isSeries(vals, 0) && isSeries(vals, 1):
			recs = append(recs, SeriesRecord{
				X: vals[0].series, Y: vals[1].series, Grid: vals[2].grid,
			})
			vals = vals[3:]
		case isLabel(vals, 2) && isSeries(vals, 0) && isSeries(vals, 1):
			recs = append(recs, SeriesRecord{
				X: vals[0].series, Y: vals[1].series, Label: vals[2].label,
			})
			vals = vals[3:]
		case isLabel(vals, 1) && isSeries(vals, 0):
			recs = append(recs, SeriesRecord{Y: vals[0].series, Label: vals[1].label})
			vals = vals[2:]
		case isSeries(vals, 0) && isSeries(vals, 1):
			recs = append(recs, SeriesRecord{X: vals[0].series, Y: vals[1].series})
			vals = vals[2:]
		case isSeries(vals, 0):
			recs = append(recs, SeriesRecord{Y: vals[0].series})
			vals = vals[1:]
		default:
			return nil, configErrorf("cannot group plot arguments: unexpected %s", vals[0])
		}
	}
	return recs, nil
}

// group3D groups fixed x,y,z triples with an optional trailing label.
// 3-d plots never infer an index x: all three sequences are required.
func group3D(vals []value) ([]SeriesRecord, error) {
	var recs []SeriesRecord
	for len(vals) > 0 {
		if !isSeries(vals, 0) || !isSeries(vals, 1) || !isSeries(vals, 2) {
			return nil, configErrorf("3-d plots need x, y and z sequences, got %s", vals[0])
		}
		rec := SeriesRecord{X: vals[0].series, Y: vals[1].series, Z: vals[2].series}
		switch {
		case isLabel(vals, 3):
			rec.Label = vals[3].label
			vals = vals[4:]
		case isSeries(vals, 3) && isLabel(vals, 4):
			rec.Aux = [][]float64{vals[3].series}
			rec.Label = vals[4].label
			vals = vals[5:]
		default:
			vals = vals[3:]
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// groupBar groups bar chart arguments. The leading element of each
// chunk is the category axis; a bare y-only chunk gets its x
// materialized right away as 0..len(y)-1.
func groupBar(vals []value) ([]SeriesRecord, error) {
	var recs []SeriesRecord
	for len(vals) > 0 {
		switch {
		case isLabel(vals, 2) && isSeries(vals, 0) && isSeries(vals, 1):
			recs = append(recs, SeriesRecord{
				X: vals[0].series, Y: vals[1].series, Label: vals[2].label,
			})
			vals = vals[3:]
		case isSeries(vals, 0) && isSeries(vals, 1):
			recs = append(recs, SeriesRecord{X: vals[0].series, Y: vals[1].series})
			vals = vals[2:]
		case isLabel(vals, 1) && isSeries(vals, 0):
			recs = append(recs, SeriesRecord{
				X: indexSeq(len(vals[0].series)), Y: vals[0].series, Label: vals[1].label,
			})
			vals = vals[2:]
		case isSeries(vals, 0):
			recs = append(recs, SeriesRecord{
				X: indexSeq(len(vals[0].series)), Y: vals[0].series,
			})
			vals = vals[1:]
		default:
			return nil, configErrorf("cannot group bar arguments: unexpected %s", vals[0])
		}
	}
	return recs, nil
}
