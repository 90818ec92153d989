// ABOUTME: Logrus setup for the CLI and MCP server.
// ABOUTME: Logs go to stderr and optionally to a rotating file; stdout stays clean for output and MCP.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerSetupParams selects the log file, level, and output format.
type LoggerSetupParams struct {
	LogFileName   string
	LogLevel      string
	LogFormatJSON bool
}

// Setup configures the standard logrus logger. The returned closer releases
// the log file, if any.
func Setup(params LoggerSetupParams) io.Closer {
	return configure(logrus.StandardLogger(), params, os.Stderr)
}

func configure(logger *logrus.Logger, params LoggerSetupParams, console io.Writer) io.Closer {
	if params.LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	logger.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logger.SetOutput(console)
		return nopCloser{}
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		LocalTime:  false,
		Compress:   true,
	}
	logger.SetOutput(io.MultiWriter(console, lumberJackLogger))
	return lumberJackLogger
}

// GetLevel parses a level name. Unknown names yield WarnLevel.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.WarnLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
