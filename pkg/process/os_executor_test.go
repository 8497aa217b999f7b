/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package process

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bf2py/bf2debug/pkg/testutil"
)

const helperProcessEnv = "BF2DEBUG_PROCESS_TEST_HELPER"

// Not a real test: the executor tests start the test binary itself as the child process.
func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperProcessEnv) != "1" {
		t.Skip("helper process only")
	}
	time.Sleep(200 * time.Millisecond)
	os.Exit(0)
}

func helperCommand() *exec.Cmd {
	cmd := exec.Command(os.Args[0], "-test.run=^TestHelperProcess$")
	cmd.Env = append(os.Environ(), helperProcessEnv+"=1")
	return cmd
}

func TestStartDetachedReportsPid(t *testing.T) {
	t.Parallel()

	ctx, cancel := testutil.GetTestContext(t, 10*time.Second)
	defer cancel()

	executor := NewOSExecutor(testutil.NewLogForTesting(t.Name()))
	cmd := helperCommand()
	cmd.Dir = t.TempDir()

	handle, err := executor.StartDetached(ctx, cmd)
	require.NoError(t, err)
	require.True(t, handle.Valid())
	require.NotNil(t, cmd.SysProcAttr, "the child must be decoupled from the parent")
}

func TestStartDetachedMissingExecutable(t *testing.T) {
	t.Parallel()

	ctx, cancel := testutil.GetTestContext(t, 10*time.Second)
	defer cancel()

	executor := NewOSExecutor(testutil.NewLogForTesting(t.Name()))
	cmd := exec.Command(filepath.Join(t.TempDir(), "no-such-launcher"))

	handle, err := executor.StartDetached(ctx, cmd)
	require.Error(t, err)
	require.Equal(t, UnknownPID, handle.Pid)
}

func TestStartDetachedCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executor := NewOSExecutor(testutil.NewLogForTesting(t.Name()))
	handle, err := executor.StartDetached(ctx, helperCommand())
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, handle.Valid())
}
