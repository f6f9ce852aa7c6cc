package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/d-kuro/fsprobe/internal/strutil"
)

// DateLayout renders timestamps as day, month, year then wall clock.
const DateLayout = "02012006 15:04:05"

// FormatDate formats t with DateLayout in local time.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// Color names the console color a line is printed with.
type Color int

const (
	ColorGray Color = iota
	ColorRed
	ColorYellow
	ColorCyan
)

func (c Color) attribute() color.Attribute {
	switch c {
	case ColorRed:
		return color.FgRed
	case ColorYellow:
		return color.FgYellow
	case ColorCyan:
		return color.FgCyan
	default:
		return color.FgHiBlack
	}
}

// OutputLine is one rendered log line and the color it would be printed in.
type OutputLine struct {
	Text  string
	Color Color
}

// Capture collects log lines in memory instead of printing them.
// It is safe for concurrent use.
type Capture struct {
	mu    sync.Mutex
	lines []OutputLine
}

// Lines returns a copy of the captured lines.
func (c *Capture) Lines() []OutputLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]OutputLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Reset drops every captured line.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

func (c *Capture) add(line OutputLine) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
}

// HandlerOptions configures a ConsoleHandler.
type HandlerOptions struct {
	Level   slog.Leveler
	Color   bool
	Capture *Capture
}

// ConsoleHandler is a slog.Handler producing lines of the form
//
//	[DDMMYYYY HH:MM:SS][E]:message key=value
//
// colored by level when color is enabled.
type ConsoleHandler struct {
	w       io.Writer
	mu      *sync.Mutex
	level   slog.Leveler
	color   bool
	capture *Capture
	attrs   string
	group   string
	now     func() time.Time
}

// NewConsoleHandler creates a ConsoleHandler writing to w.
func NewConsoleHandler(w io.Writer, opts *HandlerOptions) *ConsoleHandler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{
		w:       w,
		mu:      &sync.Mutex{},
		level:   level,
		color:   opts.Color,
		capture: opts.Capture,
		now:     time.Now,
	}
}

// Enabled implements slog.Handler.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = h.now()
	}

	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(FormatDate(ts))
	sb.WriteString("][")
	sb.WriteString(levelTag(r.Level))
	sb.WriteString("]:")
	sb.WriteString(oneLine(r.Message))
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})
	sb.WriteString("\n")

	line := OutputLine{Text: sb.String(), Color: levelColor(r.Level)}
	if h.capture != nil {
		h.capture.add(line)
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.color {
		_, err := io.WriteString(h.w, line.Text)
		return err
	}
	c := color.New(line.Color.attribute())
	c.EnableColor()
	_, err := c.Fprint(h.w, line.Text)
	return err
}

// WithAttrs implements slog.Handler.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.group, a)
	}
	clone.attrs = sb.String()
	return &clone
}

// WithGroup implements slog.Handler.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = h.group + name + "."
	return &clone
}

func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, sub, ga)
		}
		return
	}
	val := a.Value.String()
	if strings.ContainsAny(val, " \t\"=") {
		val = fmt.Sprintf("%q", val)
	} else {
		val = oneLine(val)
	}
	sb.WriteString(" ")
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteString("=")
	sb.WriteString(val)
}

// oneLine escapes line breaks so every record stays on a single line.
func oneLine(s string) string {
	return strutil.ReplaceAll(strutil.ReplaceAll(s, "\r", `\r`), "\n", `\n`)
}

func levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "E"
	case level >= slog.LevelWarn:
		return "W"
	case level >= slog.LevelInfo:
		return "I"
	default:
		return "D"
	}
}

func levelColor(level slog.Level) Color {
	switch {
	case level >= slog.LevelError:
		return ColorRed
	case level >= slog.LevelWarn:
		return ColorYellow
	case level >= slog.LevelInfo:
		return ColorCyan
	default:
		return ColorGray
	}
}

// useColor resolves a color mode against the destination writer.
// auto enables color only for terminals and honours NO_COLOR.
func useColor(w io.Writer, mode string) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
