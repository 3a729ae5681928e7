// Package logger renders engine progress and command diagnostics as
// human-readable console lines.
package logger

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/taigrr/treeops/internal/types"
)

const (
	levelDebug int = iota
	levelInfo
	levelWarn
	levelError
)

// Levels lists the accepted log levels from most to least verbose.
var Levels = []string{"debug", "info", "warn", "error"}

// Color modes accepted by NewConsoleLogger.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// It is safe for concurrent use and implements types.Observer.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// NewConsoleLogger creates a ConsoleLogger. A nil writer discards every
// message. Unknown levels fall back to "info". In auto color mode colors are
// used only when writer is a terminal and NO_COLOR is unset.
func NewConsoleLogger(writer io.Writer, logLevel, colorMode string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: useColor(writer, colorMode),
		now:         time.Now,
	}
}

func useColor(w io.Writer, mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAlways:
		return w != nil
	case ColorNever:
		return false
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if ValidLevel(normalized) {
		return normalized
	}
	return "info"
}

// ValidLevel reports whether level names one of Levels, ignoring case.
func ValidLevel(level string) bool {
	return slices.Contains(Levels, strings.ToLower(strings.TrimSpace(level)))
}

func logLevelToInt(level string) int {
	switch level {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

func (cl *ConsoleLogger) LogInfo(message string) { cl.logWithLevel("INFO", message, nil) }
func (cl *ConsoleLogger) LogWarn(message string) { cl.logWithLevel("WARN", message, nil) }

// Observe logs an engine event. Traversal progress is logged at debug level,
// mutations at info.
func (cl *ConsoleLogger) Observe(e types.Event) {
	cl.logWithLevel(eventLevel(e.Action), e.Message(), actionColor(e.Action))
}

func eventLevel(a types.Action) string {
	switch a {
	case types.ActionEnter, types.ActionSkip:
		return "DEBUG"
	}
	return "INFO"
}

func actionColor(a types.Action) *color.Color {
	switch a {
	case types.ActionCopy, types.ActionCopyTree:
		return color.New(color.FgGreen)
	case types.ActionDelete, types.ActionDeleteTree:
		return color.New(color.FgRed)
	case types.ActionPrune:
		return color.New(color.FgYellow)
	case types.ActionMkdir:
		return color.New(color.FgCyan)
	case types.ActionEnter, types.ActionSkip:
		return color.New(color.FgHiBlack)
	}
	return nil
}

func (cl *ConsoleLogger) logWithLevel(level, message string, messageColor *color.Color) {
	if cl.writer == nil || !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := cl.now().Format("15:04:05")
	if !cl.colorOutput {
		fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, level, message)
		return
	}

	coloredLevel := levelColor(level).Sprint(level)
	if messageColor != nil {
		messageColor.EnableColor()
		message = messageColor.Sprint(message)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", ts, coloredLevel, message)
}

func levelColor(level string) *color.Color {
	var c *color.Color
	switch level {
	case "DEBUG":
		c = color.New(color.FgCyan)
	case "WARN":
		c = color.New(color.FgYellow)
	case "ERROR":
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgBlue)
	}
	c.EnableColor()
	return c
}
