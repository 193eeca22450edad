package logger

import (
	"sync"

	"go.uber.org/zap"
)

// Log is the engine-wide logger. It is a no-op logger until Init is called.
var Log = zap.NewNop()

var initOnce sync.Once

// Init builds the development logger. Calling it more than once is harmless.
func Init() {
	initOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			return
		}
		Log = l
	})
}

// Sync flushes buffered log entries
func Sync() {
	_ = Log.Sync()
}
