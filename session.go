package vgplot

import "time"

// Config carries the knobs of a SessionManager. The zero value is not
// usable, construct through New.
type Config struct {
	// Command is the full command line of the plotting process.
	Command string

	// DrainTimeout bounds how long each response drain waits.
	DrainTimeout time.Duration

	// Debug echoes every command and response through the log package.
	Debug bool

	// AutoRedraw replots after every state changing operation.
	AutoRedraw bool

	dial func(command string, debug bool) (Conn, error)
}

type Option func(*Config)

// WithCommand overrides the gnuplot command line, e.g.
// "gnuplot -persist". The string is split shell-style.
func WithCommand(command string) Option {
	return func(c *Config) { c.Command = command }
}

// WithDrainTimeout tunes the best-effort response read.
func WithDrainTimeout(d time.Duration) Option {
	return func(c *Config) { c.DrainTimeout = d }
}

// WithDebug logs all traffic with the subprocess.
func WithDebug() Option {
	return func(c *Config) { c.Debug = true }
}

// WithoutRedraw suppresses the automatic replot after state changing
// operations.
func WithoutRedraw() Option {
	return func(c *Config) { c.AutoRedraw = false }
}

// withDialer replaces the subprocess spawner. Used by the tests.
func withDialer(dial func(command string, debug bool) (Conn, error)) Option {
	return func(c *Config) { c.dial = dial }
}

type sessionState int

const (
	stateSingle sessionState = iota
	stateMultiplot
	stateClosed
)

// Session wraps one subprocess connection, one multiplot flag and the
// temp files of the current plot.
type Session struct {
	conn  Conn
	files *tempStore
	state sessionState
}

func (s *Session) close() error {
	if s.state == stateClosed {
		return nil
	}
	s.state = stateClosed
	err := s.conn.Close()
	s.files.destroy()
	return err
}

// SessionManager owns the stack of sessions. The top of the stack is
// the active session receiving all commands. It is not safe for
// concurrent use.
type SessionManager struct {
	cfg   Config
	stack []*Session
}

// New builds a SessionManager. No subprocess is started until the
// first plotting call.
func New(opts ...Option) *SessionManager {
	cfg := Config{
		Command:      "gnuplot",
		DrainTimeout: 50 * time.Millisecond,
		AutoRedraw:   true,
		dial:         dial,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return &SessionManager{cfg: cfg}
}

// active returns the session on top of the stack, creating one when
// none exists yet.
func (m *SessionManager) active() (*Session, error) {
	if n := len(m.stack); n > 0 {
		return m.stack[n-1], nil
	}
	return m.push()
}

func (m *SessionManager) push() (*Session, error) {
	conn, err := m.cfg.dial(m.cfg.Command, m.cfg.Debug)
	if err != nil {
		return nil, err
	}
	files, err := newTempStore()
	if err != nil {
		conn.Close()
		return nil, err
	}
	s := &Session{conn: conn, files: files}
	m.stack = append(m.stack, s)
	return s, nil
}

// NewPlot pushes the current session and starts a fresh one, which
// becomes the active target of all following calls.
func (m *SessionManager) NewPlot() error {
	_, err := m.push()
	return err
}

// Close terminates the active session: the subprocess is told to quit
// and the temp files are deleted. The previously pushed session, if
// any, becomes active again.
func (m *SessionManager) Close() error {
	n := len(m.stack)
	if n == 0 {
		return nil
	}
	s := m.stack[n-1]
	m.stack = m.stack[:n-1]
	return s.close()
}

// CloseAll pops and closes sessions until the stack is empty.
func (m *SessionManager) CloseAll() error {
	var first error
	for len(m.stack) > 0 {
		if err := m.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// send issues one command on the active session.
func (m *SessionManager) send(cmd string) error {
	s, err := m.active()
	if err != nil {
		return err
	}
	return s.conn.Send(cmd)
}

// query issues a command and drains its reply best-effort.
func (m *SessionManager) query(cmd string) (string, error) {
	s, err := m.active()
	if err != nil {
		return "", err
	}
	if err := s.conn.Send(cmd); err != nil {
		return "", err
	}
	return s.conn.Drain(m.cfg.DrainTimeout), nil
}

// redraw replots unless suppressed by configuration.
func (m *SessionManager) redraw() error {
	if !m.cfg.AutoRedraw {
		return nil
	}
	return m.send("replot")
}
