/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bf2py/bf2debug/pkg/osutil"
	"github.com/bf2py/bf2debug/pkg/process"
)

func TestOutputFormatFlag(t *testing.T) {
	t.Parallel()

	type testcase struct {
		args     []string
		expected OutputFormat
		valid    bool
	}

	testcases := []testcase{
		{nil, OutputFormatText, true},
		{[]string{"-o", "json"}, OutputFormatJSON, true},
		{[]string{"--output=text"}, OutputFormatText, true},
		{[]string{"-o", "yaml"}, OutputFormatText, false},
	}

	for _, tc := range testcases {
		var format OutputFormat
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.SetOutput(&bytes.Buffer{})
		AddOutputFlag(fs, &format)

		err := fs.Parse(tc.args)
		if tc.valid {
			require.NoError(t, err, "args: %v", tc.args)
		} else {
			require.Error(t, err, "args: %v", tc.args)
		}
		assert.Equal(t, tc.expected, format, "args: %v", tc.args)
	}
}

func TestWriteOutput(t *testing.T) {
	t.Parallel()

	value := struct {
		Name string `json:"name"`
	}{Name: "bf2"}

	var text bytes.Buffer
	require.NoError(t, WriteOutput(&text, OutputFormatText, "name: bf2", value))
	require.Equal(t, "name: bf2"+string(osutil.LineSep()), text.String())

	var jsonOut bytes.Buffer
	require.NoError(t, WriteOutput(&jsonOut, OutputFormatJSON, "name: bf2", value))
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &decoded))
	require.Equal(t, map[string]string{"name": "bf2"}, decoded)
}

func TestMonitorPidWithoutPid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	monitorCtx, err := MonitorPid(ctx, int64(process.UnknownPID), 0, logr.Discard())
	require.ErrorIs(t, err, errNoPidToMonitor)
	require.Equal(t, ctx, monitorCtx)
}

func TestMonitorPidProcessNotRunning(t *testing.T) {
	t.Parallel()

	// Far above the default PID limit of the supported platforms.
	const missingPid = 0x7FFFFFF0

	_, err := MonitorPid(context.Background(), missingPid, 0, logr.Discard())
	require.ErrorIs(t, err, process.ErrorProcessNotFound)
}

func TestMonitorPidRunningProcess(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	monitorCtx, err := MonitorPid(ctx, int64(os.Getpid()), 1, logr.Discard())
	require.NoError(t, err)
	require.NoError(t, monitorCtx.Err(), "the current process is running")

	cancel()
	<-monitorCtx.Done()
}
