package vgplot

import "testing"

func equalSeq(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStairstep(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 5, 3}
	sx, sy := Stairstep(x, y)
	if !equalSeq(sx, []float64{0, 1, 1, 2, 2}) {
		t.Errorf("got x %v, want [0 1 1 2 2]", sx)
	}
	if !equalSeq(sy, []float64{0, 0, 5, 5, 3}) {
		t.Errorf("got y %v, want [0 0 5 5 3]", sy)
	}
}

func TestStairstepLength(t *testing.T) {
	for _, n := range []int{2, 3, 10, 101} {
		x := indexSeq(n)
		sx, sy := Stairstep(x, x)
		if len(sx) != 2*n-1 || len(sy) != 2*n-1 {
			t.Errorf("n=%d: got lengths %d, %d, want %d", n, len(sx), len(sy), 2*n-1)
		}
	}
}

func TestStairstepSingle(t *testing.T) {
	sx, sy := Stairstep([]float64{7}, []float64{9})
	if !equalSeq(sx, []float64{7}) || !equalSeq(sy, []float64{9}) {
		t.Errorf("got %v, %v, want inputs unchanged", sx, sy)
	}
}

func TestStairstepTruncated(t *testing.T) {
	sx, sy := Stairstep([]float64{0, 1, 2, 3}, []float64{4, 6})
	if len(sx) != 3 || len(sy) != 3 {
		t.Fatalf("got lengths %d, %d, want 3", len(sx), len(sy))
	}
	if !equalSeq(sx, []float64{0, 1, 1}) || !equalSeq(sy, []float64{4, 4, 6}) {
		t.Errorf("got %v, %v", sx, sy)
	}
}

func TestStairstepIndexed(t *testing.T) {
	sx, sy := StairstepIndexed([]float64{1, 2})
	if !equalSeq(sx, []float64{0, 1, 1}) || !equalSeq(sy, []float64{1, 1, 2}) {
		t.Errorf("got %v, %v", sx, sy)
	}
}
