package dispatch

import "go.uber.org/zap"

// Config sizes a Table.
type Config struct {
	Slots  int         // default: 16
	Logger *zap.Logger // default: no-op
}

func NewConfig(slots int, logger *zap.Logger) Config {
	if slots <= 0 {
		slots = 16
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return Config{
		Slots:  slots,
		Logger: logger,
	}
}
