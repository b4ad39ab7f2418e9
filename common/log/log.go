// Package log configures the process-wide log15 handlers from the node
// configuration.
package log

import (
	"os"

	log15 "github.com/inconshreveable/log15"
	"github.com/rpschain/rpschain/types"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// keep handler references so levels can be adjusted without
	// re-initialising the whole logging stack
	fileHandler    *log15.Handler
	consoleHandler *log15.Handler
)

// SetLogLevel sets the console log level.
func SetLogLevel(logLevel string) {
	handler := getConsoleLogHandler(logLevel)
	log15.Root().SetHandler(*handler)
}

// SetFileLog configures file and console logging from cfg.
func SetFileLog(cfg *types.Log) {
	if cfg == nil {
		cfg = &types.Log{LogFile: "logs/rpschain.log"}
	}
	if cfg.LogFile == "" {
		SetLogLevel(cfg.LogConsoleLevel)
	} else {
		resetLog(cfg)
	}
}

func resetLog(cfg *types.Log) {
	fillDefaultValue(cfg)
	log15.Root().SetHandler(log15.MultiHandler(*getConsoleLogHandler(cfg.LogConsoleLevel), *getFileLogHandler(cfg)))
}

// default to error level so a missing config does not flood the console
func fillDefaultValue(cfg *types.Log) {
	if cfg.Loglevel == "" {
		cfg.Loglevel = log15.LvlError.String()
	}
	if cfg.LogConsoleLevel == "" {
		cfg.LogConsoleLevel = log15.LvlError.String()
	}
}

func isWindows() bool {
	return os.PathSeparator == '\\' && os.PathListSeparator == ';'
}

func getConsoleLogHandler(logLevel string) *log15.Handler {
	if consoleHandler != nil {
		return consoleHandler
	}
	format := log15.TerminalFormat()
	if isWindows() {
		format = log15.LogfmtFormat()
	}
	stdouth := log15.LvlFilterHandler(
		getLevel(logLevel),
		log15.StreamHandler(os.Stdout, format),
	)
	consoleHandler = &stdouth
	return &stdouth
}

func getFileLogHandler(cfg *types.Log) *log15.Handler {
	if fileHandler != nil {
		return fileHandler
	}

	rotateLogger := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    int(cfg.MaxFileSize),
		MaxBackups: int(cfg.MaxBackups),
		MaxAge:     int(cfg.MaxAge),
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}

	fileh := log15.LvlFilterHandler(
		getLevel(cfg.Loglevel),
		log15.StreamHandler(rotateLogger, log15.LogfmtFormat()),
	)
	if cfg.CallerFile {
		fileh = log15.CallerFileHandler(fileh)
	}
	if cfg.CallerFunction {
		fileh = log15.CallerFuncHandler(fileh)
	}

	fileHandler = &fileh
	return &fileh
}

func getLevel(lvlString string) log15.Lvl {
	lvl, err := log15.LvlFromString(lvlString)
	if err != nil {
		return log15.LvlError
	}
	return lvl
}

// New returns a logger bound to the root handler.
func New(ctx ...interface{}) log15.Logger {
	return log15.Root().New(ctx...)
}
