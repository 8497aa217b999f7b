/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package process

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/go-logr/logr"
)

type OSExecutor struct {
	log logr.Logger
}

func NewOSExecutor(log logr.Logger) *OSExecutor {
	return &OSExecutor{
		log: log.WithName("os-executor"),
	}
}

func (e *OSExecutor) StartDetached(ctx context.Context, cmd *exec.Cmd) (ProcessHandle, error) {
	if err := ctx.Err(); err != nil {
		return ProcessHandle{Pid: UnknownPID}, err
	}

	// No standard streams are shared with the child; exec.Cmd connects nil streams to the null device.
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return ProcessHandle{Pid: UnknownPID}, fmt.Errorf("could not start process '%s': %w", cmd.Path, err)
	}

	handle := ProcessHandleFromCmd(cmd)
	if !handle.Valid() {
		return handle, fmt.Errorf("the operating system did not report a process ID for '%s'", cmd.Path)
	}

	e.log.V(1).Info("started detached process",
		"PID", handle.Pid,
		"Cmd", cmd.String(),
		"Dir", cmd.Dir,
		"IdentityTime", handle.IdentityTime,
	)

	// The child is intentionally never waited on: it must outlive this process.
	return handle, nil
}

var _ Executor = (*OSExecutor)(nil)
