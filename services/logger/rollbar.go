package logsvc

import (
	"sort"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trezcool/collegecompass/core"
)

// New builds a zap logger. format is "json" or "console"; unknown levels fall back to info.
func New(level, format string) *zap.Logger {
	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// RollbarLogger writes to zap and forwards every entry to Rollbar once enabled.
type RollbarLogger struct {
	zl      *zap.Logger
	enabled bool
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(zl *zap.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{zl: zl}
}

// NewNopLogger discards everything. Used by tests.
func NewNopLogger() *RollbarLogger {
	return &RollbarLogger{zl: zap.NewNop()}
}

func (l *RollbarLogger) Enable(enabled bool) {
	l.enabled = enabled
	rollbar.SetEnabled(enabled)
}

// Named returns a child logger sharing the Rollbar setup, eg. "api" or "debug".
func (l *RollbarLogger) Named(name string) *RollbarLogger {
	return &RollbarLogger{zl: l.zl.Named(name), enabled: l.enabled}
}

func (l *RollbarLogger) Sync() error {
	return l.zl.Sync()
}

// expected fmt: msg | error, map[string]interface{}
func fields(args []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case error:
			out = append(out, zap.Error(v))
		case map[string]interface{}:
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				out = append(out, zap.Any(k, v[k]))
			}
		default:
			out = append(out, zap.Any("arg", v))
		}
	}
	return out
}

func (l *RollbarLogger) forward(report func(...interface{}), msg string, args []interface{}) {
	if !l.enabled {
		return
	}
	report(append([]interface{}{msg}, args...)...)
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) {
	l.forward(rollbar.Debug, msg, args)
	l.zl.Debug(msg, fields(args)...)
}

func (l *RollbarLogger) Info(msg string, args ...interface{}) {
	l.forward(rollbar.Info, msg, args)
	l.zl.Info(msg, fields(args)...)
}

func (l *RollbarLogger) Warn(msg string, args ...interface{}) {
	l.forward(rollbar.Warning, msg, args)
	l.zl.Warn(msg, fields(args)...)
}

func (l *RollbarLogger) Error(msg string, args ...interface{}) {
	l.forward(rollbar.Error, msg, args)
	l.zl.Error(msg, fields(args)...)
}

func (l *RollbarLogger) Fatal(msg string, args ...interface{}) {
	l.forward(rollbar.Critical, msg, args)
	if l.enabled {
		rollbar.Wait()
	}
	l.zl.Fatal(msg, fields(args)...)
}
