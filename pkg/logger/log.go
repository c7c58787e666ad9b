package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger собирает консольный логгер: stdout и, если задан, файл.
func NewLogger(level string, outputs ...string) *zap.Logger {
	lvl := zap.NewAtomicLevelAt(zap.InfoLevel)
	if level != "" {
		if parsed, err := zapcore.ParseLevel(level); err == nil {
			lvl = zap.NewAtomicLevelAt(parsed)
		}
	}

	paths := []string{"stdout"}
	for _, out := range outputs {
		if out != "" {
			paths = append(paths, out)
		}
	}

	dualConfig := zap.Config{
		Encoding:         "console",
		Level:            lvl,
		OutputPaths:      paths,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	dualLogger, err := dualConfig.Build()
	if err != nil {
		panic(err)
	}

	return dualLogger
}
