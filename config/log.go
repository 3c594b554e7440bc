package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// NamedLogger creates named package logger.
func NamedLogger(name string) *logrus.Entry {
	return logrus.WithField("module", name)
}

// InitLogger configures the standard logger for the given level.
func InitLogger(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetFormatter(&CustomTextFormatter{
		logrus.TextFormatter{FullTimestamp: true},
	})
	logrus.SetLevel(parsed)
	return nil
}

// CustomTextFormatter prefixes messages with the module name.
type CustomTextFormatter struct {
	logrus.TextFormatter
}

// Format renders a single log entry
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if module, ok := entry.Data["module"]; ok {
		clone := *entry
		clone.Data = logrus.Fields{}
		for k, v := range entry.Data {
			if k != "module" {
				clone.Data[k] = v
			}
		}
		clone.Message = fmt.Sprintf("[%-10s]%s", module, entry.Message)
		return f.TextFormatter.Format(&clone)
	}
	return f.TextFormatter.Format(entry)
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}
var availableLoggingLevelsString = strings.Join(availableLoggingLevels, ", ")

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}

// AvailableLoggingLevels lists the accepted logging levels.
func AvailableLoggingLevels() []string {
	return append([]string(nil), availableLoggingLevels...)
}
