// Package log wraps the standard logger with a raw terminal mode. While the
// terminal is raw, a bare LF does not return the cursor to column zero, so
// every LF written by the logger has to be preceded by a CR.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
)

var crlfPrefixer = regexp.MustCompile(`(?:([^\r])\n|^\n)`)

type Logger struct {
	l       *log.Logger
	rawMode bool
}

var std = NewFromLogger(log.Default(), false)

// Default returns the logger used by the package-level functions.
func Default() *Logger { return std }

func New(out io.Writer, prefix string, flag int, rawMode bool) *Logger {
	return NewFromLogger(log.New(out, prefix, flag), rawMode)
}

func NewFromLogger(l *log.Logger, rawMode bool) *Logger {
	return &Logger{l: l, rawMode: rawMode}
}

// fixString rewrites line endings to CRLF when the logger is in raw mode and
// makes sure the message ends with one.
func (l *Logger) fixString(str string) string {
	if !l.rawMode {
		return str
	}

	s := crlfPrefixer.ReplaceAllString(str, "$1\r\n")
	if len(s) == 0 || s[len(s)-1] != '\n' {
		s += "\r\n"
	}
	return s
}

func (l *Logger) RawMode() bool {
	return l.rawMode
}

// SetRawMode should be toggled together with the terminal itself, typically
// around term.MakeRaw and term.Restore.
func (l *Logger) SetRawMode(rawMode bool) {
	l.rawMode = rawMode
}

func (l *Logger) SetOutput(w io.Writer) {
	l.l.SetOutput(w)
}

func (l *Logger) Output(calldepth int, s string) error {
	return l.l.Output(calldepth+1, l.fixString(s))
}

func (l *Logger) Print(v ...any) {
	l.l.Output(2, l.fixString(fmt.Sprint(v...)))
}

func (l *Logger) Printf(format string, v ...any) {
	l.l.Output(2, l.fixString(fmt.Sprintf(format, v...)))
}

func (l *Logger) Println(v ...any) {
	l.l.Output(2, l.fixString(fmt.Sprintln(v...)))
}

func (l *Logger) Fatal(v ...any) {
	l.Print(v...)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, v ...any) {
	l.Printf(format, v...)
	os.Exit(1)
}

func (l *Logger) Fatalln(v ...any) {
	l.Println(v...)
	os.Exit(1)
}

// The package-level functions write to the default logger.

func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func Output(calldepth int, s string) error {
	return std.Output(calldepth+1, s) // +1 for this frame.
}

func Print(v ...any) {
	std.Print(v...)
}

func Printf(format string, v ...any) {
	std.Printf(format, v...)
}

func Println(v ...any) {
	std.Println(v...)
}

func Fatal(v ...any) {
	std.Fatal(v...)
}

func Fatalf(format string, v ...any) {
	std.Fatalf(format, v...)
}

func Fatalln(v ...any) {
	std.Fatalln(v...)
}
