package bounded

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs the logger used for rejected emplacements, empty
// invocations and moves. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l.Named("bounded")
}
