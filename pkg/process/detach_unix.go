//go:build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.

package process

import (
	"os/exec"
	"syscall"
)

// Places the child in its own process group, so signals sent to the group of this process
// (for example when the editor stops the adapter) do not reach the game server.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
