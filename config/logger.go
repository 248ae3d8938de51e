package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger sets up the global zap logger. Logs always go to stdout;
// when LOG_FILE_ENABLE is set they are also written to a rotating file.
func InitLogger() {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(os.Stdout),
		level,
	)

	core := consoleCore
	if GetEnv("LOG_FILE_ENABLE", "") != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   GetEnv("LOG_FILE", "logs/product.log"),
			MaxSize:    64,
			MaxBackups: 30,
			MaxAge:     30,
		}
		core = zapcore.NewTee(
			consoleCore,
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(fileWriter),
				level,
			),
		)
	}

	logger := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(logger)
}
