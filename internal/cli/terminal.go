// Package cli provides the console's terminal texture: colored notices,
// a loading spinner shown while a screen fetches, confirmation prompts for
// destructive actions, and tabular rendering for list screens.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"text/tabwriter"
	"time"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
)

// statusColors matches the list screens' per-status badge colors.
var statusColors = map[string]string{
	"pending":   colorYellow,
	"preparing": colorBlue,
	"ready":     colorPurple,
	"confirmed": colorGreen,
	"completed": colorGreen,
	"cancelled": colorRed,
}

// Terminal wraps the console's input and output streams so screens stay
// testable with fake readers and writers.
type Terminal struct {
	in       *bufio.Reader
	out      io.Writer
	colorize bool
}

// New builds a Terminal over in/out. Color is enabled only when out is a
// character device.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:       bufio.NewReader(in),
		out:      out,
		colorize: isTerminal(out),
	}
}

func (t *Terminal) Out() io.Writer {
	return t.out
}

// Printf writes formatted plain output.
func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// Success prints a checkmarked notice, the console's equivalent of the
// success toast.
func (t *Terminal) Success(message string) {
	t.notice(colorGreen, "✓", message)
}

// Errorf prints a crossmarked error notice.
func (t *Terminal) Errorf(format string, args ...any) {
	t.notice(colorRed, "✗", fmt.Sprintf(format, args...))
}

// Warn prints a warning notice.
func (t *Terminal) Warn(message string) {
	t.notice(colorYellow, "⚠", message)
}

// Info prints an informational notice.
func (t *Terminal) Info(message string) {
	t.notice(colorBlue, "ℹ", message)
}

func (t *Terminal) notice(color, mark, message string) {
	if t.colorize {
		fmt.Fprintf(t.out, "%s%s%s %s\n", color, mark, colorReset, message)
	} else {
		fmt.Fprintf(t.out, "%s %s\n", mark, message)
	}
}

// Status renders a status value in its badge color.
func (t *Terminal) Status(status string) string {
	color, ok := statusColors[status]
	if !ok || !t.colorize {
		return status
	}
	return color + status + colorReset
}

// Confirm asks a yes/no question and returns true only for an explicit
// yes. Every destructive action goes through here before any request is
// issued.
func (t *Terminal) Confirm(prompt string) bool {
	fmt.Fprintf(t.out, "%s [y/N]: ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// ReadLine prompts for one line of input.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprintf(t.out, "%s: ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Table renders rows under a header with aligned columns.
func (t *Terminal) Table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(t.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// Spinner is the loading indicator shown while a screen's fetch is in
// flight. With no timeout configured a hung request spins indefinitely.
type Spinner struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
	active bool
	done   chan struct{}
	tty    bool
}

// NewSpinner builds a spinner writing to the terminal's output.
func (t *Terminal) NewSpinner(prefix string) *Spinner {
	return &Spinner{
		out:    t.out,
		prefix: prefix,
		done:   make(chan struct{}),
		tty:    t.colorize,
	}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Start begins animating. On a non-terminal writer it prints the prefix
// once and stays quiet.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	if !s.tty {
		fmt.Fprintf(s.out, "%s...\n", s.prefix)
		return
	}

	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		frame := 0
		for {
			select {
			case <-ticker.C:
				s.mu.Lock()
				if !s.active {
					s.mu.Unlock()
					return
				}
				fmt.Fprintf(s.out, "\r%s%s%s %s", colorCyan, spinnerFrames[frame], colorReset, s.prefix)
				frame = (frame + 1) % len(spinnerFrames)
				s.mu.Unlock()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	close(s.done)
	if s.tty {
		fmt.Fprint(s.out, "\r"+strings.Repeat(" ", len(s.prefix)+4)+"\r")
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
