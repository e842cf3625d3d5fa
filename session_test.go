package vgplot

import (
	"os"
	"testing"
	"time"
)

// stackDialer hands out a fresh fakeConn per session.
func stackDialer(conns *[]*fakeConn) Option {
	return withDialer(func(string, bool) (Conn, error) {
		c := &fakeConn{replies: map[string]string{}}
		*conns = append(*conns, c)
		return c, nil
	})
}

func TestSessionAutoCreate(t *testing.T) {
	var conns []*fakeConn
	m := New(stackDialer(&conns))
	defer m.CloseAll()

	if len(conns) != 0 {
		t.Fatalf("subprocess started before the first call")
	}
	if err := m.Plot([]float64{1, 2}); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if len(conns) != 1 {
		t.Fatalf("got %d sessions, want 1", len(conns))
	}
}

func TestSessionStack(t *testing.T) {
	var conns []*fakeConn
	m := New(stackDialer(&conns))
	defer m.CloseAll()

	if err := m.Plot([]float64{1, 2}); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if err := m.NewPlot(); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if err := m.Plot([]float64{3, 4}); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if len(conns) != 2 {
		t.Fatalf("got %d sessions, want 2", len(conns))
	}
	// The second session is the active one.
	if len(conns[0].sent) != 1 {
		t.Errorf("first session saw %d commands, want 1: %v",
			len(conns[0].sent), conns[0].sent)
	}

	// Close pops back to the first session.
	if err := m.Close(); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if !conns[1].closed {
		t.Errorf("popped session not closed")
	}
	if err := m.SetTitle("back"); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if !conns[0].has(`set title "back"`) {
		t.Errorf("command went to the wrong session: %v", conns[0].sent)
	}
}

func TestCloseAll(t *testing.T) {
	var conns []*fakeConn
	m := New(stackDialer(&conns))

	m.Plot([]float64{1})
	m.NewPlot()
	m.Plot([]float64{2})
	m.NewPlot()
	m.Plot([]float64{3})

	if err := m.CloseAll(); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if len(m.stack) != 0 {
		t.Errorf("stack not empty after CloseAll")
	}
	for i, c := range conns {
		if !c.closed {
			t.Errorf("session %d not closed", i)
		}
	}
}

func TestCloseDeletesTempFiles(t *testing.T) {
	var conns []*fakeConn
	m := New(stackDialer(&conns))

	if err := m.Plot([]float64{1, 2}); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	s := m.stack[0]
	dir := s.files.dir
	if err := m.Close(); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("temp dir %s still there after close", dir)
	}
}

func TestCloseIdempotent(t *testing.T) {
	var conns []*fakeConn
	m := New(stackDialer(&conns))

	if err := m.Close(); err != nil {
		t.Errorf("closing an empty manager: %s", err)
	}
	m.Plot([]float64{1})
	m.Close()
	if err := m.Close(); err != nil {
		t.Errorf("second close: %s", err)
	}
}

func TestDrainTimeoutOption(t *testing.T) {
	m := New(WithDrainTimeout(123 * time.Millisecond))
	if m.cfg.DrainTimeout != 123*time.Millisecond {
		t.Errorf("got %s, want 123ms", m.cfg.DrainTimeout)
	}
}
