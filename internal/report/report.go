// Package report prints severity-colored diagnostics to stderr and maps
// I/O errors to process exit codes.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/charmbracelet/lipgloss"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Reporter writes one diagnostic line per call. With Color set the line is
// tinted by severity: errors red, info green, warnings yellow.
type Reporter struct {
	Color bool
	// Out defaults to stderr.
	Out io.Writer
}

func (r Reporter) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stderr
}

func (r Reporter) line(style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if r.Color {
		msg = style.Render(msg)
	}
	fmt.Fprintln(r.out(), msg)
}

// Errorf reports an error-severity line.
func (r Reporter) Errorf(format string, args ...any) {
	r.line(errStyle, format, args...)
}

// Infof reports an info-severity line.
func (r Reporter) Infof(format string, args ...any) {
	r.line(infoStyle, format, args...)
}

// Warnf reports a warning-severity line.
func (r Reporter) Warnf(format string, args ...any) {
	r.line(warnStyle, format, args...)
}

// ExitCode maps a fatal error to a process exit status. When the error
// wraps a system errno (open or read failures do), that errno is the exit
// status; anything else exits 1.
func ExitCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 1
}
