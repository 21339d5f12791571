package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Severity classifies a console line.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
	SeverityInput
	SeverityAnswer
	SeveritySuccess
)

// Tag returns the bracketed label printed in front of a message.
func (s Severity) Tag() string {
	switch s {
	case SeverityWarn:
		return "[WARN]"
	case SeverityError:
		return "[ERROR]"
	case SeverityInput:
		return "[INPUT]"
	case SeverityAnswer:
		return "[ANS]"
	case SeveritySuccess:
		return "[GOOD]"
	default:
		return "[INFO]"
	}
}

// palette maps each severity to its foreground color.
var palette = map[Severity]lipgloss.TerminalColor{
	SeverityInfo:    lipgloss.Color("10"), // bright green
	SeverityWarn:    lipgloss.Color("11"), // bright yellow
	SeverityError:   lipgloss.Color("9"),  // bright red
	SeverityInput:   lipgloss.Color("12"), // bright blue
	SeverityAnswer:  lipgloss.Color("13"), // bright magenta
	SeveritySuccess: lipgloss.Color("#FFE600"),
}

// Logger writes one line per message. It is safe for concurrent use, though
// the bootstrap flow only ever calls it from one goroutine.
type Logger struct {
	mu     sync.Mutex
	w      io.Writer
	color  bool
	styles map[Severity]lipgloss.Style
}

// Option configures a Logger.
type Option func(*Logger)

// WithColor forces color on or off regardless of terminal detection.
func WithColor(enabled bool) Option {
	return func(l *Logger) { l.color = enabled }
}

// New returns a Logger writing to w. Color is enabled when w is a terminal.
func New(w io.Writer, opts ...Option) *Logger {
	l := &Logger{
		w:     w,
		color: IsTerminal(w),
	}
	for _, opt := range opts {
		opt(l)
	}

	r := lipgloss.NewRenderer(w)
	l.styles = make(map[Severity]lipgloss.Style, len(palette))
	for sev, c := range palette {
		l.styles[sev] = r.NewStyle().Foreground(c).Bold(true)
	}
	return l
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, WithColor(false))
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Writer returns the destination, for streaming child-process output.
func (l *Logger) Writer() io.Writer { return l.w }

// Log writes a single line with the given severity.
func (l *Logger) Log(sev Severity, format string, args ...any) {
	line := sev.Tag() + " " + fmt.Sprintf(format, args...)
	if l.color {
		line = l.styles[sev].Render(line)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, line)
}

func (l *Logger) Info(format string, args ...any)    { l.Log(SeverityInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)    { l.Log(SeverityWarn, format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.Log(SeverityError, format, args...) }
func (l *Logger) Input(format string, args ...any)   { l.Log(SeverityInput, format, args...) }
func (l *Logger) Answer(format string, args ...any)  { l.Log(SeverityAnswer, format, args...) }
func (l *Logger) Success(format string, args ...any) { l.Log(SeveritySuccess, format, args...) }
