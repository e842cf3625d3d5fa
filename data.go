package vgplot

import (
	"fmt"
	"reflect"
)

// Plot arguments arrive as a flat interface{} list. Before grouping,
// each is classified into one of three kinds: a numeric series, a 2-d
// grid, or a label string.
type valueKind int

const (
	kindSeries valueKind = iota
	kindGrid
	kindLabel
)

type value struct {
	kind   valueKind
	series []float64
	grid   [][]float64
	label  string
}

func (v value) String() string {
	switch v.kind {
	case kindSeries:
		return fmt.Sprintf("series[%d]", len(v.series))
	case kindGrid:
		return fmt.Sprintf("grid[%d]", len(v.grid))
	}
	return fmt.Sprintf("label %q", v.label)
}

// classify converts one caller supplied argument. Any slice of a
// numeric element type becomes a series, a slice of such slices a grid,
// a string a label.
func classify(arg interface{}) (value, error) {
	if s, ok := arg.(string); ok {
		return value{kind: kindLabel, label: s}, nil
	}

	v := reflect.ValueOf(arg)
	if v.Kind() != reflect.Slice {
		return value{}, configErrorf("cannot plot %T: want a numeric slice, a grid or a string", arg)
	}
	if v.Type().Elem().Kind() == reflect.Slice {
		grid := make([][]float64, v.Len())
		for i := 0; i < v.Len(); i++ {
			row, err := toSeries(v.Index(i))
			if err != nil {
				return value{}, err
			}
			grid[i] = row
		}
		return value{kind: kindGrid, grid: grid}, nil
	}
	s, err := toSeries(v)
	if err != nil {
		return value{}, err
	}
	return value{kind: kindSeries, series: s}, nil
}

// toSeries copies a reflected slice of any numeric element type into a
// []float64.
func toSeries(v reflect.Value) ([]float64, error) {
	n := v.Len()
	out := make([]float64, n)
	switch v.Type().Elem().Kind() {
	case reflect.Float32, reflect.Float64:
		for i := 0; i < n; i++ {
			out[i] = v.Index(i).Float()
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		for i := 0; i < n; i++ {
			out[i] = float64(v.Index(i).Int())
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		for i := 0; i < n; i++ {
			out[i] = float64(v.Index(i).Uint())
		}
	default:
		return nil, configErrorf("cannot plot %s: element type is not numeric", v.Type())
	}
	return out, nil
}

// classifyAll converts a whole argument list.
func classifyAll(args []interface{}) ([]value, error) {
	vals := make([]value, len(args))
	for i, a := range args {
		v, err := classify(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
