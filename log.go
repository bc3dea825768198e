package linkage

import "go.uber.org/zap"

// logger is used by the orchestration layer only; the constraint and pose
// subpackages are pure functions and never log.
var logger = zap.NewNop()

// SetLogger routes the package's debug/warn/error output to l. Passing nil
// restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
