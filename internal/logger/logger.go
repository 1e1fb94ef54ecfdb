package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Logger prints leveled, category-tagged lines to the console. Categories
// ("DATABASE", "KAFKA", "GUARD", ...) keep a single bot process greppable
// without a full structured-logging setup.
type Logger struct {
	mu  sync.Mutex
	out io.Writer

	info  *color.Color
	warn  *color.Color
	err   *color.Color
	debug *color.Color
}

func New() *Logger {
	return &Logger{
		out:   os.Stdout,
		info:  color.New(color.FgGreen, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		err:   color.New(color.FgRed, color.Bold),
		debug: color.New(color.FgCyan),
	}
}

func (l *Logger) write(c *color.Color, level, category, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.out, "%s %s [%s] %s\n", ts, c.Sprintf("%-5s", level), category, msg)
}

func (l *Logger) Info(category, msg string)  { l.write(l.info, "INFO", category, msg) }
func (l *Logger) Warn(category, msg string)  { l.write(l.warn, "WARN", category, msg) }
func (l *Logger) Error(category, msg string) { l.write(l.err, "ERROR", category, msg) }
func (l *Logger) Debug(category, msg string) { l.write(l.debug, "DEBUG", category, msg) }

func (l *Logger) Fatal(category, msg string) {
	l.write(l.err, "FATAL", category, msg)
	os.Exit(1)
}

func (l *Logger) Infof(category, format string, args ...any) {
	l.Info(category, fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(category, format string, args ...any) {
	l.Warn(category, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(category, format string, args ...any) {
	l.Error(category, fmt.Sprintf(format, args...))
}
