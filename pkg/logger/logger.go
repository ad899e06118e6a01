package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "edu_admissions"

var log = zap.NewNop().Sugar()

// Init builds the process logger from LOG_LEVEL and APP_ENV values.
// Logging is a no-op until it runs.
func Init(logLevel, appEnv string) {
	l, err := newConfig(logLevel, appEnv).Build()
	if err != nil {
		log = zap.NewExample().Sugar()
		log.Warnw("Logger config rejected, using example logger", "error", err)
		return
	}
	log = l.Sugar()
}

// newConfig emits JSON with ISO8601 timestamps. Development swaps in a
// colored console encoder and caller-annotated warnings.
func newConfig(logLevel, appEnv string) zap.Config {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoder := zap.NewProductionEncoderConfig()
	encoder.TimeKey = "timestamp"
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "json",
		EncoderConfig:    encoder,
		InitialFields:    map[string]interface{}{"service": serviceName, "env": appEnv},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if appEnv == "development" {
		cfg.Development = true
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}

// Use swaps the process logger, e.g. for an observer core in tests.
func Use(l *zap.Logger) {
	log = l.Sugar()
}

func Debug(msg string, keysAndValues ...interface{}) { log.Debugw(msg, keysAndValues...) }

func Info(msg string, keysAndValues ...interface{}) { log.Infow(msg, keysAndValues...) }

func Warn(msg string, keysAndValues ...interface{}) { log.Warnw(msg, keysAndValues...) }

func Error(msg string, keysAndValues ...interface{}) { log.Errorw(msg, keysAndValues...) }

// Fatal logs err and exits the process.
func Fatal(msg string, err error) {
	log.Fatalw(msg, "error", err)
}

func Sync() {
	_ = log.Sync()
}
