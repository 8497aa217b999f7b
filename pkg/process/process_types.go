/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package process

import (
	"context"
	"os/exec"
)

type Pid_t int64

const (
	// Unknown PID code is used when the process is not started (or fails to start)
	UnknownPID Pid_t = -1
)

type Executor interface {
	// Starts the process described by given command instance, detached from the current process.
	// The process is not waited on and is not stopped when the passed context is cancelled;
	// the context only bounds the start operation itself.
	// Returns the handle of the started process.
	StartDetached(ctx context.Context, cmd *exec.Cmd) (ProcessHandle, error)
}
