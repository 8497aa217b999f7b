/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/bf2py/bf2debug/pkg/process"
)

const (
	defaultMonitorInterval = time.Second
)

var errNoPidToMonitor = errors.New("no PID to monitor")

var (
	monitorPidInt64 int64 = int64(process.UnknownPID)
	monitorInterval uint8
)

func AddMonitorFlags(cmd *cobra.Command) {
	cmd.Flags().Int64VarP(&monitorPidInt64, "monitor", "m", int64(process.UnknownPID), "If present, tells bf2debug to monitor a given process ID (PID) and shut down gracefully if the monitored process exits for any reason.")
	cmd.Flags().Uint8VarP(&monitorInterval, "monitor-interval", "i", 0, "If present, specifies the time in seconds between checks for the monitor PID.")
}

func GetMonitorPid() int64 {
	return monitorPidInt64
}

// MonitorPid returns a context that is cancelled when the process with the given PID exits.
func MonitorPid(ctx context.Context, pid int64, pollInterval uint8, logger logr.Logger) (context.Context, error) {
	if pid == int64(process.UnknownPID) {
		return ctx, errNoPidToMonitor
	}

	monitorPid, err := process.Int64ToPidT(pid)
	if err != nil {
		logger.Error(err, "error converting PID", "pid", pid)
		return ctx, err
	}

	handle := process.NewProcessHandle(monitorPid, process.ProcessIdentityTime(monitorPid))
	if !process.IsRunning(handle) {
		return ctx, fmt.Errorf("process %d is not running: %w", pid, process.ErrorProcessNotFound)
	}

	interval := defaultMonitorInterval
	if pollInterval > 0 {
		interval = time.Second * time.Duration(pollInterval)
	}

	monitorCtx, monitorCtxCancel := context.WithCancel(ctx)
	go func() {
		defer monitorCtxCancel()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-monitorCtx.Done():
				logger.V(1).Info("monitoring cancelled by context", "pid", monitorPid)
				return
			case <-ticker.C:
				if !process.IsRunning(handle) {
					logger.Info("monitored process exited, shutting down", "pid", monitorPid)
					return
				}
			}
		}
	}()

	return monitorCtx, nil
}

// Monitor applies the monitor flags to the context. Without a PID to monitor the context is returned as-is.
func Monitor(ctx context.Context, logger logr.Logger) context.Context {
	monitorCtx, err := MonitorPid(ctx, monitorPidInt64, monitorInterval, logger)
	if err != nil && !errors.Is(err, errNoPidToMonitor) {
		logger.Error(err, "could not monitor process", "pid", monitorPidInt64)
	}
	return monitorCtx
}
