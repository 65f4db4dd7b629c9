package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Init builds the shared logger. Development mode gets human-readable
// output, everything else the production JSON encoder.
func Init(env string) *zap.Logger {
	once.Do(func() {
		var (
			l   *zap.Logger
			err error
		)
		if env == "local" || env == "dev" {
			l, err = zap.NewDevelopment()
		} else {
			cfg := zap.NewProductionConfig()
			cfg.OutputPaths = []string{"stdout"}
			l, err = cfg.Build()
		}
		if err != nil {
			panic(err)
		}
		instance = l
	})
	return instance
}

func GetLogger() *zap.Logger {
	if instance == nil {
		return Init("local")
	}
	return instance
}
