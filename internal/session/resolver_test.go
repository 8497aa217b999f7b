/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bf2py/bf2debug/internal/bf2paths"
	"github.com/bf2py/bf2debug/internal/launcher"
	"github.com/bf2py/bf2debug/internal/prompt"
	"github.com/bf2py/bf2debug/pkg/process"
	"github.com/bf2py/bf2debug/pkg/testutil"
)

type launchCall struct {
	baseDir string
	args    []string
}

type fakeLauncher struct {
	calls  []launchCall
	result launcher.SpawnResult
}

func (fl *fakeLauncher) Launch(_ context.Context, baseDir string, args []string) launcher.SpawnResult {
	fl.calls = append(fl.calls, launchCall{baseDir: baseDir, args: args})
	return fl.result
}

func started() launcher.SpawnResult {
	return launcher.SpawnResult{Started: true, Process: process.NewProcessHandle(1234, time.Time{})}
}

func intPtr(v int) *int {
	return &v
}

func newPathResolver(t *testing.T, p prompt.Prompter) *bf2paths.Resolver {
	return bf2paths.NewResolver(bf2paths.NoopProber{}, p, testutil.NewLogForTesting(t.Name()))
}

func newTestResolver(t *testing.T, l Launcher, p prompt.Prompter) *Resolver {
	r := NewResolver(newPathResolver(t, p), l, testutil.NewLogForTesting(t.Name()))
	r.platform = "linux"
	return r
}

func TestAttachUsesDebugPort(t *testing.T) {
	t.Parallel()

	fl := &fakeLauncher{result: started()}
	p := prompt.NewMockPrompter()
	r := newTestResolver(t, fl, p)

	req := &DebugRequest{Kind: RequestKindAttach, Config: Configuration{DebugPort: intPtr(4711)}}
	cd, err := r.Resolve(context.Background(), req)

	require.NoError(t, err)
	require.Equal(t, 4711, cd.Port)
	require.Equal(t, DefaultHost, cd.Host)
	require.Empty(t, fl.calls, "attaching must not start the game server")
	require.Empty(t, p.Calls(), "attaching must not ask for the installation directory")
}

func TestAttachPortPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      Configuration
		expected int
	}{
		{"debugServer only", Configuration{DebugServer: intPtr(5678)}, 5678},
		{"debugPort wins", Configuration{DebugServer: intPtr(5678), DebugPort: intPtr(4711)}, 4711},
		{"invalid debugPort ignored", Configuration{DebugServer: intPtr(5678), DebugPort: intPtr(70000)}, 5678},
		{"custom local host", Configuration{DebugPort: intPtr(4711), Host: "localhost"}, 4711},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := newTestResolver(t, &fakeLauncher{}, prompt.NewMockPrompter())
			cd, err := r.Resolve(context.Background(), &DebugRequest{Kind: RequestKindAttach, Config: tt.cfg})
			require.NoError(t, err)
			require.Equal(t, tt.expected, cd.Port)
		})
	}
}

func TestAttachWithoutPort(t *testing.T) {
	t.Parallel()

	fl := &fakeLauncher{result: started()}
	r := newTestResolver(t, fl, prompt.NewMockPrompter())

	_, err := r.Resolve(context.Background(), &DebugRequest{Kind: RequestKindAttach, Config: Configuration{DebugPort: intPtr(0)}})
	require.ErrorIs(t, err, ErrMissingConfiguration)
	require.Empty(t, fl.calls)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, RequestKindAttach, reqErr.Kind)
	require.Contains(t, err.Error(), `"attach"`)
}

func TestLaunchAssignsDefaultDapPort(t *testing.T) {
	t.Parallel()

	fl := &fakeLauncher{result: started()}
	r := newTestResolver(t, fl, prompt.NewMockPrompter())

	req := &DebugRequest{Kind: RequestKindLaunch, Config: Configuration{TargetArgs: []string{"+modPath", "mods/bf2"}}}
	cd, err := r.Resolve(context.Background(), req)

	require.NoError(t, err)
	require.Equal(t, DefaultDapPort, cd.Port)
	require.NotNil(t, req.Config.DapPort)
	require.Equal(t, DefaultDapPort, *req.Config.DapPort)
	require.Equal(t, bf2paths.DefaultUnixPath, req.Config.TargetDir)

	require.Len(t, fl.calls, 1)
	assert.Equal(t, bf2paths.DefaultUnixPath, fl.calls[0].baseDir)
	assert.Equal(t, []string{"-bf2path=" + bf2paths.DefaultUnixPath, "+modPath", "mods/bf2", "-dapport=19021"}, fl.calls[0].args)
}

func TestLaunchKeepsExplicitDapPort(t *testing.T) {
	t.Parallel()

	fl := &fakeLauncher{result: started()}
	r := newTestResolver(t, fl, prompt.NewMockPrompter())

	req := &DebugRequest{Kind: RequestKindLaunch, Config: Configuration{DapPort: intPtr(20000), TargetDir: "/srv/bf2"}}
	cd, err := r.Resolve(context.Background(), req)

	require.NoError(t, err)
	require.Equal(t, 20000, cd.Port)
	require.Equal(t, 20000, *req.Config.DapPort)
	require.Equal(t, "/srv/bf2", fl.calls[0].baseDir)
}

func TestLaunchUsesConfirmedDirectory(t *testing.T) {
	t.Parallel()

	fl := &fakeLauncher{result: started()}
	p := prompt.NewMockPrompter(prompt.Answer("/opt/bf2"))
	r := newTestResolver(t, fl, p)

	req := &DebugRequest{Kind: RequestKindLaunch, Config: Configuration{TargetDir: "/srv/bf2"}}
	_, err := r.Resolve(context.Background(), req)

	require.NoError(t, err)
	require.Equal(t, "/opt/bf2", req.Config.TargetDir)
	require.Equal(t, "/opt/bf2", fl.calls[0].baseDir)
	require.Len(t, p.Calls(), 1)
	require.Equal(t, "/srv/bf2", p.Calls()[0].Default)
}

func TestLaunchFailure(t *testing.T) {
	t.Parallel()

	spawnErr := errors.New("no such file")
	fl := &fakeLauncher{result: launcher.SpawnResult{Err: spawnErr}}
	r := newTestResolver(t, fl, prompt.NewMockPrompter())

	cd, err := r.Resolve(context.Background(), &DebugRequest{Kind: RequestKindLaunch})
	require.ErrorIs(t, err, ErrLaunchFailed)
	require.ErrorIs(t, err, spawnErr)
	require.Equal(t, ConnectionDescriptor{}, cd)
}

func TestLaunchCancelledByUser(t *testing.T) {
	t.Parallel()

	fl := &fakeLauncher{result: started()}
	p := prompt.NewMockPrompter(prompt.Fail(prompt.ErrCancelled))
	r := newTestResolver(t, fl, p)

	_, err := r.Resolve(context.Background(), &DebugRequest{Kind: RequestKindLaunch})
	require.ErrorIs(t, err, ErrResolutionCancelled)
	require.Empty(t, fl.calls)
}

func TestUnsupportedRequest(t *testing.T) {
	t.Parallel()

	fl := &fakeLauncher{result: started()}
	r := newTestResolver(t, fl, prompt.NewMockPrompter())

	_, err := r.Resolve(context.Background(), &DebugRequest{Kind: "debug-in-place", Config: Configuration{DebugPort: intPtr(4711)}})
	require.ErrorIs(t, err, ErrUnsupportedRequest)
	require.Contains(t, err.Error(), `"debug-in-place"`)
	require.Empty(t, fl.calls)
}

func TestInvalidConfigurationIsRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Configuration
	}{
		{"remote host", Configuration{DebugPort: intPtr(4711), Host: "10.0.0.5"}},
		{"invalid dapPort", Configuration{DapPort: intPtr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fl := &fakeLauncher{result: started()}
			r := newTestResolver(t, fl, prompt.NewMockPrompter())
			_, err := r.Resolve(context.Background(), &DebugRequest{Kind: RequestKindLaunch, Config: tt.cfg})
			require.ErrorIs(t, err, ErrMissingConfiguration)
			require.Empty(t, fl.calls)
		})
	}
}

func TestResolveWithCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fl := &fakeLauncher{result: started()}
	r := newTestResolver(t, fl, prompt.NewMockPrompter())
	_, err := r.Resolve(ctx, &DebugRequest{Kind: RequestKindLaunch})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, fl.calls)
}
