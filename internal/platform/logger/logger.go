package logger

import (
	"log"

	"go.uber.org/zap"
)

var Log *zap.Logger

func Init() {
	var err error
	Log, err = zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(Log)
}

func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
