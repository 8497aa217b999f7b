/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package session

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/go-logr/logr"

	"github.com/bf2py/bf2debug/internal/bf2paths"
	"github.com/bf2py/bf2debug/internal/launcher"
	"github.com/bf2py/bf2debug/pkg/pointers"
)

// PathResolver determines the game server installation directory.
type PathResolver interface {
	Resolve(ctx context.Context, platform string, hint string) (bf2paths.Location, error)
}

// Launcher starts the game server with the debug server enabled.
type Launcher interface {
	Launch(ctx context.Context, baseDir string, args []string) launcher.SpawnResult
}

// Resolver turns a debug request into the address of a running debug server,
// starting the game server first if the request asks for it.
type Resolver struct {
	paths    PathResolver
	launcher Launcher
	platform string
	log      logr.Logger
}

func NewResolver(paths PathResolver, l Launcher, log logr.Logger) *Resolver {
	return &Resolver{
		paths:    paths,
		launcher: l,
		platform: runtime.GOOS,
		log:      log.WithName("session-resolver"),
	}
}

// Resolve returns the connection descriptor for the request.
// Settings decided during resolution (the default debug server port, the confirmed
// installation directory) are written back into the request configuration.
// Every error returned is a *RequestError.
func (r *Resolver) Resolve(ctx context.Context, req *DebugRequest) (ConnectionDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return ConnectionDescriptor{}, requestError(req.Kind, err)
	}
	if err := req.Config.Validate(); err != nil {
		return ConnectionDescriptor{}, requestError(req.Kind, fmt.Errorf("%w: %w", ErrMissingConfiguration, err))
	}

	switch req.Kind {
	case RequestKindAttach:
		return r.attach(req)
	case RequestKindLaunch:
		return r.launch(ctx, req)
	default:
		return ConnectionDescriptor{}, requestError(req.Kind, ErrUnsupportedRequest)
	}
}

func (r *Resolver) attach(req *DebugRequest) (ConnectionDescriptor, error) {
	cfg := &req.Config

	var port *int
	switch {
	case validPort(cfg.DebugPort):
		port = cfg.DebugPort
	case validPort(cfg.DebugServer):
		port = cfg.DebugServer
	default:
		return ConnectionDescriptor{}, requestError(req.Kind, fmt.Errorf("%w: attaching needs the port of a running debug server (debugPort or debugServer)", ErrMissingConfiguration))
	}

	cd := r.descriptor(cfg, *port)
	r.log.Info("attaching to debug server", "Address", cd.Address())
	return cd, nil
}

func (r *Resolver) launch(ctx context.Context, req *DebugRequest) (ConnectionDescriptor, error) {
	cfg := &req.Config

	pointers.SetIfNil(&cfg.DapPort, DefaultDapPort)

	location, err := r.paths.Resolve(ctx, r.platform, cfg.TargetDir)
	if err != nil {
		return ConnectionDescriptor{}, requestError(req.Kind, err)
	}
	cfg.TargetDir = location.Path
	r.log.V(1).Info("game server directory resolved", "Path", location.Path, "Source", location.Source.String())

	args := launcher.BuildArgs(cfg.TargetDir, slices.Clone(cfg.TargetArgs), *cfg.DapPort)
	result := r.launcher.Launch(ctx, cfg.TargetDir, args)
	if !result.Started {
		if result.Err != nil {
			return ConnectionDescriptor{}, requestError(req.Kind, fmt.Errorf("%w: %w", ErrLaunchFailed, result.Err))
		}
		return ConnectionDescriptor{}, requestError(req.Kind, ErrLaunchFailed)
	}

	cd := r.descriptor(cfg, *cfg.DapPort)
	r.log.Info("game server launched", "PID", result.Process.Pid, "Address", cd.Address())
	return cd, nil
}

func (r *Resolver) descriptor(cfg *Configuration, port int) ConnectionDescriptor {
	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	return ConnectionDescriptor{Host: host, Port: port}
}
