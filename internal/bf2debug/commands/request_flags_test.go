/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/bf2py/bf2debug/internal/session"
)

func parseRequestFlags(t *testing.T, args ...string) (session.DebugRequest, error) {
	t.Helper()

	var rf requestFlags
	cmd := &cobra.Command{Use: "test"}
	rf.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return rf.buildRequest(cmd, cmd.Flags().Args())
}

func TestBuildRequestMergesDescriptorAndFlags(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	descriptor := filepath.Join(dir, "launch.yaml")
	content := "request: launch\nbf2dir: /srv/bf2\nbf2args: [\"+modPath\", \"mods/bf2\"]\nenvFile: server.env\nenv:\n  LOG: \"1\"\n"
	require.NoError(t, os.WriteFile(descriptor, []byte(content), 0600))

	req, err := parseRequestFlags(t,
		"-f", descriptor,
		"--dap-port", "20000",
		"--env-file", "/etc/bf2/extra.env",
		"--env", "LOG=2,MOD=xpack",
		"--", "+modPath", "mods/xpack",
	)
	require.NoError(t, err)

	require.Equal(t, session.RequestKindLaunch, req.Kind)
	require.Equal(t, "/srv/bf2", req.Config.TargetDir)
	require.NotNil(t, req.Config.DapPort)
	require.Equal(t, 20000, *req.Config.DapPort)
	require.Equal(t, []string{"+modPath", "mods/xpack"}, req.Config.TargetArgs, "trailing arguments replace the descriptor ones")
	require.Equal(t, []string{filepath.Join(dir, "server.env"), "/etc/bf2/extra.env"}, req.Config.EnvFiles)
	require.Equal(t, map[string]string{"LOG": "2", "MOD": "xpack"}, req.Config.Env)
}

func TestBuildRequestWithoutDescriptor(t *testing.T) {
	t.Parallel()

	req, err := parseRequestFlags(t, "-r", "attach", "--debug-server", "4711")
	require.NoError(t, err)
	require.Equal(t, session.RequestKindAttach, req.Kind)
	require.Nil(t, req.Config.DebugPort)
	require.Equal(t, 4711, *req.Config.DebugServer)
	require.Empty(t, req.Config.Env)
}
