//go:build !linux

package device

import (
	"runtime"

	"go.uber.org/zap"
)

// Reboot restarts the host. Only Linux is supported.
type Reboot struct {
	Log *zap.Logger // optional
}

// Reset logs that restarting is unsupported on this platform.
func (r Reboot) Reset() {
	logger(r.Log).Error("reset:unsupported", zap.String("goos", runtime.GOOS))
}
