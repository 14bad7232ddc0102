package util

import (
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

func init() {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	var err error
	Logger, err = config.Build()
	if err != nil {
		panic(err)
	}
}

// InitFileLogger redirects Logger to the given file. The console is reserved
// for the evaluation report, so callers that print a report should move
// logging away from stdout first.
func InitFileLogger(filename string) error {
	logger, _, err := log.InitLogger(&log.Config{
		Level: "info",
		File:  log.FileLogConfig{Filename: filename},
	})
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}
