package systems

import (
	cfg "github.com/automoto/doomerang-ai/config"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger installs the logger systems write to. nil restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// tickDT is the fixed simulation step in seconds.
func tickDT() float64 {
	return 1 / float64(cfg.Sim.TickRate)
}
