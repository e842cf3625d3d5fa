package vgplot

import (
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/kballard/go-shellquote"
)

// Conn is a duplex text channel to a running plotting process. Commands
// go in line by line; whatever the process printed back is collected by
// Drain.
type Conn interface {
	// Send writes one command line and flushes it.
	Send(cmd string) error

	// Drain collects the output that arrives within timeout. The read
	// is best effort: the returned text may be incomplete and callers
	// must not assume the full response made it back.
	Drain(timeout time.Duration) string

	// Close asks the process to quit and releases the channel.
	Close() error
}

// gnuplotConn drives a real gnuplot subprocess.
type gnuplotConn struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	out     chan string
	done    chan struct{}
	closing sync.Once
	debug   bool
}

// dial starts the plotting subprocess. The command line is a single
// string, split shell-style, so "gnuplot -persist" works as expected.
func dial(command string, debug bool) (Conn, error) {
	words, err := shellquote.Split(command)
	if err != nil {
		return nil, configErrorf("cannot split command %q: %s", command, err)
	}
	if len(words) == 0 {
		return nil, configErrorf("empty plot command")
	}

	cmd := exec.Command(words[0], words[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	c := &gnuplotConn{
		cmd:   cmd,
		stdin: stdin,
		out:   make(chan string, 64),
		done:  make(chan struct{}),
		debug: debug,
	}
	go c.pump(stdout)
	go c.pump(stderr)
	return c, nil
}

// pump forwards process output to the drain channel until EOF or until
// the connection closes, so an undrained chatty session cannot wedge
// the goroutine on a full channel.
func (c *gnuplotConn) pump(r io.Reader) {
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			select {
			case c.out <- string(buf[:n]):
			case <-c.done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func (c *gnuplotConn) Send(cmd string) error {
	if c.debug {
		log.Printf("vgplot> %s", cmd)
	}
	_, err := fmt.Fprintln(c.stdin, cmd)
	return err
}

func (c *gnuplotConn) Drain(timeout time.Duration) string {
	var sb strings.Builder
	deadline := time.After(timeout)
	for {
		select {
		case chunk := <-c.out:
			sb.WriteString(chunk)
		case <-deadline:
			// One last sweep of anything already buffered.
			for {
				select {
				case chunk := <-c.out:
					sb.WriteString(chunk)
				default:
					if c.debug && sb.Len() > 0 {
						log.Printf("vgplot< %s", sb.String())
					}
					return sb.String()
				}
			}
		}
	}
}

func (c *gnuplotConn) Close() error {
	// Quit may fail when the process died already; the Wait result is
	// what matters.
	c.Send("quit")
	c.stdin.Close()
	c.closing.Do(func() { close(c.done) })
	return c.cmd.Wait()
}
