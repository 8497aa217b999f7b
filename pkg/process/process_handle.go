/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package process

import (
	"os/exec"
	"time"
)

// ProcessHandle refers to a single process instance: the PID plus the start time of the process,
// so that a handle does not match an unrelated process that later reuses the PID.
// IdentityTime is zero where the start time cannot be read reliably; only the PID is compared then.
type ProcessHandle struct {
	Pid          Pid_t
	IdentityTime time.Time
}

func NewProcessHandle(pid Pid_t, startTime time.Time) ProcessHandle {
	return ProcessHandle{Pid: pid, IdentityTime: startTime}
}

// ProcessHandleFromCmd creates a ProcessHandle from a started exec.Cmd.
// If the command was not started, the handle carries UnknownPID.
func ProcessHandleFromCmd(cmd *exec.Cmd) ProcessHandle {
	if cmd == nil || cmd.Process == nil || cmd.Process.Pid <= 0 {
		return ProcessHandle{Pid: UnknownPID}
	}

	pid := Uint32_ToPidT(uint32(cmd.Process.Pid))
	return ProcessHandle{
		Pid:          pid,
		IdentityTime: ProcessIdentityTime(pid),
	}
}

// Valid reports whether the handle refers to a process the OS assigned an ID to.
func (h ProcessHandle) Valid() bool {
	return h.Pid > 0
}
