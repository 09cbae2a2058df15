//go:build linux

package device

import (
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// Reboot restarts the host. It needs CAP_SYS_BOOT.
type Reboot struct {
	Log *zap.Logger // optional
}

// Reset flushes filesystems and restarts. It only returns if the restart
// was refused.
func (r Reboot) Reset() {
	unix.Sync()
	if err := unix.Reboot(unix.LINUX_REBOOT_CMD_RESTART); err != nil {
		logger(r.Log).Error("reset:reboot", zap.Error(err))
	}
}
