package devices

import (
	"github.com/sirupsen/logrus"
)

// OutputSink receives every adb command line and every line of its output.
type OutputSink interface {
	Command(line string)
	Response(line string)
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) Command(string)  {}
func (NopSink) Response(string) {}

// LoggerSink writes commands as "$ ..." and output lines as "> ..." to a
// logrus logger.
type LoggerSink struct {
	Logger logrus.FieldLogger
}

func NewLoggerSink(logger logrus.FieldLogger) *LoggerSink {
	return &LoggerSink{Logger: logger}
}

func (s *LoggerSink) Command(line string) {
	s.Logger.Info("$ " + line)
}

func (s *LoggerSink) Response(line string) {
	s.Logger.Info("> " + line)
}
