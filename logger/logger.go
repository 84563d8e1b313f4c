// Package logger provides prefixed, colored loggers shared by the application components.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/sirupsen/logrus"
)

var ErrEmptyPrefix = errors.New("logger: prefix must not be empty")

// Logger writes leveled messages tagged with a component prefix.
type Logger struct {
	entry *logrus.Logger
}

// New creates a Logger that tags every line with prefix, colored with color, and writes to out.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, ErrEmptyPrefix
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})
	return &Logger{entry: l}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a message about a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

// prefixFormatter renders "[PREFIX] [LEVEL] message".
type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s[%s]%s %s[%s]%s %s\n",
		f.color, f.prefix, config.ColorReset,
		levelColor(e.Level), strings.ToUpper(e.Level.String()), config.LogColorReset,
		e.Message,
	)
	return b.Bytes(), nil
}

func levelColor(level logrus.Level) string {
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return config.LogErrorColor
	case logrus.WarnLevel:
		return config.LogWarnColor
	default:
		return config.LogInfoColor
	}
}
