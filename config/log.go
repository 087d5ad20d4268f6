package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig ...
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NewLogger creates a zap logger, format "console" for development output, anything else for json
func NewLogger(conf LogConfig) *zap.Logger {
	var zapConf zap.Config
	if conf.Format == "console" {
		zapConf = zap.NewDevelopmentConfig()
	} else {
		zapConf = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(conf.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
