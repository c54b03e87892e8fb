package logger

import "go.uber.org/zap"

// Lg is the process logger. It is a no-op until Init runs.
var Lg = zap.NewNop()

// Init builds the logger for the given deployment profile.
func Init(deployment string) {
	var (
		lg  *zap.Logger
		err error
	)

	switch deployment {
	case "prod":
		lg, err = zap.NewProduction()
	case "test":
		lg = zap.NewNop()
	default:
		lg, err = zap.NewDevelopment()
	}
	if err != nil {
		return
	}

	Lg = lg
}

// Sync flushes buffered entries; errors from syncing stdout are ignored.
func Sync() {
	_ = Lg.Sync()
}
