package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLog is the process-wide diagnostic logger. It discards everything
// until InitDebugLog replaces it.
var DebugLog = zap.NewNop().Sugar()

func CheckDebug() bool {
	debug := os.Getenv("LLMCHAT_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog enables debug logging when LLMCHAT_DEBUG is set (to
// <cache dir>/debug.log) and/or verbose is true (to stderr).
// The returned function flushes the logger.
func InitDebugLog(verbose bool) func() {
	var cores []zapcore.Core
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if CheckDebug() {
		logPath := filepath.Join(GetCacheDir(), "debug.log")
		if f, err := openDebugFile(logPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		} else {
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), zapcore.DebugLevel))
		}
	}
	if verbose {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.Lock(os.Stderr), zapcore.DebugLevel))
	}
	if len(cores) == 0 {
		return func() {}
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).
		With(zap.String("run_id", uuid.New().String()))
	DebugLog = logger.Sugar()
	DebugLog.Debugw("debug logging started", "LLMCHAT_DEBUG", os.Getenv("LLMCHAT_DEBUG"), "verbose", verbose)

	return func() { _ = logger.Sync() }
}

// openDebugFile opens the debug log in append mode with 0600 permissions.
func openDebugFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
}
