//go:build windows

// Copyright (c) Microsoft Corporation. All rights reserved.

package process

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// The game server gets a console and process group of its own: Ctrl+C in the console of the
// adapter must not stop it, and its console window stays visible.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_CONSOLE | windows.CREATE_NEW_PROCESS_GROUP,
	}
}
