package packed

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the packed package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger configures the packed package's logger. Passing nil restores
// the no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

func debugEvent(msg string, fields ...zap.Field) {
	if ce := Logger().Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}
