/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/bf2py/bf2debug/internal/bf2paths"
	"github.com/bf2py/bf2debug/internal/session"
	"github.com/bf2py/bf2debug/internal/version"
	"github.com/bf2py/bf2debug/internal/workspace"
	"github.com/bf2py/bf2debug/pkg/logger"
	"github.com/bf2py/bf2debug/pkg/testutil"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	log := logger.New(t.Name())
	log.SetLevel(zapcore.ErrorLevel)

	root, err := NewRootCmd(log)
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	ctx, cancel := testutil.GetTestContext(t, 20*time.Second)
	defer cancel()

	err = root.ExecuteContext(ctx)
	return strings.TrimSpace(out.String()), err
}

func TestResolveAttachJSON(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "resolve", "--request", "attach", "--debug-port", "4711", "-o", "json")
	require.NoError(t, err)

	var cd session.ConnectionDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &cd))
	require.Equal(t, session.ConnectionDescriptor{Host: session.DefaultHost, Port: 4711}, cd)
}

func TestResolveAttachFromDescriptor(t *testing.T) {
	t.Parallel()

	descriptor := filepath.Join(t.TempDir(), "launch.yaml")
	require.NoError(t, os.WriteFile(descriptor, []byte("request: attach\ndebugServer: 5678\n"), 0600))

	out, err := runCommand(t, "resolve", "-f", descriptor)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:5678", out)

	out, err = runCommand(t, "resolve", "-f", descriptor, "--debug-port", "4711")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:4711", out, "flags override the descriptor")
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "resolve", "--request", "debug-in-place", "--debug-port", "4711")
	require.ErrorIs(t, err, session.ErrUnsupportedRequest)

	_, err = runCommand(t, "resolve", "--request", "attach")
	require.ErrorIs(t, err, session.ErrMissingConfiguration)
}

func TestLocateDefault(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "locate", "--platform", "linux", "--yes", "-o", "json")
	require.NoError(t, err)

	var result locateResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, bf2paths.DefaultUnixPath, result.Path)
	require.Equal(t, bf2paths.SourceDefault.String(), result.Source)

	out, err = runCommand(t, "locate", "--platform", "linux", "--yes", "--bf2dir", "/srv/bf2")
	require.NoError(t, err)
	require.Equal(t, "/srv/bf2", out)
}

func TestSyncWorkspaceFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bf2.code-workspace")
	require.NoError(t, os.WriteFile(path, []byte(`{"folders":[{"path":"C:\\Game\\admin"}],"settings":{}}`), 0600))

	out, err := runCommand(t, "sync", "-w", path, "--base", `C:\Game\`, "--module", `mods\mymod`, "-o", "json")
	require.NoError(t, err)

	var result syncResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, 2, result.Inserted)
	require.Len(t, result.Folders, 3)

	out, err = runCommand(t, "sync", "-w", path, "--event", `{"type":"modpath","data":"C:\\Game;mods\\mymod"}`)
	require.NoError(t, err)
	require.Equal(t, "workspace folders already synchronized", out)

	folders, err := workspace.NewFileStore(path).Load()
	require.NoError(t, err)
	require.Len(t, folders, 3)
}

func TestSyncArgumentValidation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bf2.code-workspace")

	_, err := runCommand(t, "sync", "-w", path)
	require.Error(t, err)

	_, err = runCommand(t, "sync", "-w", path, "--event", `{"type":"modpath","data":"c:/game"}`)
	require.ErrorIs(t, err, workspace.ErrMalformedEvent)

	_, err = runCommand(t, "sync", "-w", path, "--event", "{", "--base", "/srv")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "bf2debug "+version.Version().Version), "unexpected version text: %s", out)

	out, err = runCommand(t, "version", "-o", "json")
	require.NoError(t, err)
	var v version.VersionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Equal(t, version.Version().Platform, v.Platform)
}
