package log

import (
	"go.uber.org/zap"
)

// Logger is the sugared subset used across packages
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Fatalw(msg string, keysAndValues ...any)
}

// Default 默认实例
var Default Logger

func init() {
	Default = zap.NewNop().Sugar()
}

func Set(logger Logger) {
	if logger != nil {
		Default = logger
	}
}

func Get() Logger {
	return Default
}

// New builds a zap sugared logger. develop selects the console encoder
// with debug level, otherwise a json logger at level writes to stderr.
func New(develop bool, level string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if develop {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = lvl
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func Debugw(msg string, keysAndValues ...any) {
	Default.Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...any) {
	Default.Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...any) {
	Default.Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...any) {
	Default.Errorw(msg, keysAndValues...)
}

func Fatalw(msg string, keysAndValues ...any) {
	Default.Fatalw(msg, keysAndValues...)
}
