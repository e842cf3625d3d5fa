package vgplot

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// tempStore owns the data files backing the current plot of one
// session. Files live in a private directory and are named
// vgplot-<n>.dat; clear removes the files of the previous plot, destroy
// removes the directory itself.
type tempStore struct {
	dir   string
	next  int
	files []string
}

func newTempStore() (*tempStore, error) {
	dir, err := os.MkdirTemp("", "vgplot")
	if err != nil {
		return nil, err
	}
	return &tempStore{dir: dir}, nil
}

func (t *tempStore) create() (*os.File, string, error) {
	name := filepath.Join(t.dir, fmt.Sprintf("vgplot-%d.dat", t.next))
	t.next++
	f, err := os.Create(name)
	if err != nil {
		return nil, "", err
	}
	t.files = append(t.files, name)
	return f, name, nil
}

// write materializes equally indexed columns as one row per sample,
// space separated, scientific notation.
func (t *tempStore) write(cols ...[]float64) (string, error) {
	f, name, err := t.create()
	if err != nil {
		return "", err
	}
	w := bufio.NewWriter(f)
	n := len(cols[0])
	for _, c := range cols {
		if len(c) < n {
			n = len(c)
		}
	}
	for i := 0; i < n; i++ {
		for j, c := range cols {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%e", c[i])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return "", err
	}
	return name, f.Close()
}

// writeGrid materializes a surface: one row group per x position,
// groups separated by a blank line the way splot wants its data.
func (t *tempStore) writeGrid(x, y []float64, grid [][]float64) (string, error) {
	f, name, err := t.create()
	if err != nil {
		return "", err
	}
	w := bufio.NewWriter(f)
	for i, row := range grid {
		xi := float64(i)
		if i < len(x) {
			xi = x[i]
		}
		for j, v := range row {
			yj := float64(j)
			if j < len(y) {
				yj = y[j]
			}
			fmt.Fprintf(w, "%e %e %e\n", xi, yj, v)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return "", err
	}
	return name, f.Close()
}

// clear deletes the files of the current plot. A file already gone is
// not an error.
func (t *tempStore) clear() {
	for _, name := range t.files {
		os.Remove(name)
	}
	t.files = t.files[:0]
}

// destroy clears and removes the backing directory.
func (t *tempStore) destroy() {
	t.clear()
	os.Remove(t.dir)
}
