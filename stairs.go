package vgplot

// Stairstep expands x and y into the doubled sequences that draw a
// zero-order-hold staircase: each y value is held flat until the next x.
// The outputs have length 2n-1. Sequences of unequal length are
// truncated to the shorter one, and a single sample is returned
// unchanged since there is no step to draw.
func Stairstep(x, y []float64) ([]float64, []float64) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if n <= 1 {
		return x[:n], y[:n]
	}

	sx := make([]float64, 0, 2*n-1)
	sy := make([]float64, 0, 2*n-1)
	sx = append(sx, x[0])
	sy = append(sy, y[0])
	for i := 1; i < n; i++ {
		sx = append(sx, x[i], x[i])
		sy = append(sy, y[i-1], y[i])
	}
	return sx, sy
}

// StairstepIndexed is the one sequence form: y is stepped against the
// synthesized positions 0..n-1.
func StairstepIndexed(y []float64) ([]float64, []float64) {
	return Stairstep(indexSeq(len(y)), y)
}

// indexSeq builds the implicit x sequence 0..n-1.
func indexSeq(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	return x
}
