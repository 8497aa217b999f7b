/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/go-logr/logr"

	"github.com/bf2py/bf2debug/pkg/osutil"
	"github.com/bf2py/bf2debug/pkg/process"
)

const (
	// Name of the native wrapper that starts the game server with the debug server injected.
	DefaultProgramName = "debug-launcher"
)

var ErrLauncherNotFound = errors.New("debug launcher not found")

// SpawnResult reports the outcome of a launch.
// Err is only set when Started is false.
type SpawnResult struct {
	Started bool
	Process process.ProcessHandle
	Err     error
}

// Coordinator starts the game server through the debug launcher.
// The started process is detached from this one: it is never waited on and never stopped.
type Coordinator struct {
	executor process.Executor
	program  string
	env      []string
	log      logr.Logger
}

// NewCoordinator creates a Coordinator. When program is empty, the launcher is located
// with FindProgram at launch time.
func NewCoordinator(executor process.Executor, program string, log logr.Logger) *Coordinator {
	return &Coordinator{
		executor: executor,
		program:  program,
		log:      log.WithName("launcher"),
	}
}

// WithEnvironment adds KEY=VALUE pairs to the environment inherited by the game server.
func (c *Coordinator) WithEnvironment(env []string) *Coordinator {
	c.env = slices.Clone(env)
	return c
}

// Launch starts the launcher in baseDir. Spawn failures are reported through the result, never panic.
func (c *Coordinator) Launch(ctx context.Context, baseDir string, args []string) SpawnResult {
	program, err := FindProgram(c.program)
	if err != nil {
		c.log.Error(err, "could not locate the debug launcher", "Configured", c.program)
		return failed(err)
	}

	cmd := makeCommand(program, baseDir, BuildArgs(baseDir, args, 0), c.env)
	c.log.Info("starting game server...", "Launcher", cmd.Path, "Dir", cmd.Dir)
	c.log.V(1).Info("launcher settings", "Args", cmd.Args[1:], "AddedEnv", len(c.env))

	handle, err := c.executor.StartDetached(ctx, cmd)
	if err != nil {
		c.log.Error(err, "failed to start the game server", "Launcher", cmd.Path)
		return failed(err)
	}
	if !handle.Valid() {
		err = fmt.Errorf("launcher '%s' did not report a process ID", cmd.Path)
		c.log.Error(err, "failed to start the game server")
		return failed(err)
	}

	c.log.Info("game server started", "Launcher", cmd.Path, "PID", handle.Pid)
	return SpawnResult{Started: true, Process: handle}
}

// FindProgram returns the launcher to run. A configured path is used as-is if it exists.
// Otherwise the launcher is looked up next to this program's executable, then on the PATH.
func FindProgram(configured string) (string, error) {
	if configured != "" {
		if _, err := os.Stat(configured); err != nil {
			return "", fmt.Errorf("%w: '%s': %w", ErrLauncherNotFound, configured, err)
		}
		return configured, nil
	}

	name := osutil.ExecutableName(DefaultProgramName)
	if exePath, err := osutil.ThisExecutablePath(); err == nil {
		candidate := filepath.Join(filepath.Dir(exePath), name)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		} else if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
			return "", statErr
		}
	}

	onPath, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: '%s' is neither next to this program nor on the PATH", ErrLauncherNotFound, name)
	}
	return onPath, nil
}

// The command is not bound to a context: the game server must outlive the debug session.
func makeCommand(program string, baseDir string, args []string, env []string) *exec.Cmd {
	cmd := exec.Command(program, args...)
	cmd.Env = append(os.Environ(), env...) // Include parent process environment
	cmd.Dir = baseDir
	return cmd
}

func failed(err error) SpawnResult {
	return SpawnResult{
		Process: process.ProcessHandle{Pid: process.UnknownPID},
		Err:     err,
	}
}
