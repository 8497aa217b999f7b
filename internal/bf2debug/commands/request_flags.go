/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"maps"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/bf2py/bf2debug/internal/bf2paths"
	"github.com/bf2py/bf2debug/internal/launcher"
	"github.com/bf2py/bf2debug/internal/prompt"
	"github.com/bf2py/bf2debug/internal/session"
	"github.com/bf2py/bf2debug/pkg/pointers"
	"github.com/bf2py/bf2debug/pkg/process"
)

const (
	descriptorFlagName  = "descriptor"
	requestFlagName     = "request"
	dapPortFlagName     = "dap-port"
	debugPortFlagName   = "debug-port"
	debugServerFlagName = "debug-server"
	bf2dirFlagName      = "bf2dir"
	launcherFlagName    = "launcher"
	hostFlagName        = "host"
	envFileFlagName     = "env-file"
	envFlagName         = "env"
	yesFlagName         = "yes"
)

// Settings of a debug request given on the command line.
// Flags override the session descriptor file; the environment fills in what is still unset.
type requestFlags struct {
	descriptorPath string
	request        string
	dapPort        int
	debugPort      int
	debugServer    int
	bf2dir         string
	launcher       string
	host           string
	envFiles       []string
	env            map[string]string
	assumeYes      bool
}

func (rf *requestFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&rf.descriptorPath, descriptorFlagName, "f", "", "Session descriptor file (JSON or YAML), e.g. an editor launch configuration.")
	fs.StringVarP(&rf.request, requestFlagName, "r", "", "Request kind: 'launch' starts the game server, 'attach' connects to a running one.")
	fs.IntVar(&rf.dapPort, dapPortFlagName, 0, "Port the embedded debug server listens on when launching (default 19021).")
	fs.IntVar(&rf.debugPort, debugPortFlagName, 0, "Port of the running debug server to attach to.")
	fs.IntVar(&rf.debugServer, debugServerFlagName, 0, "Port of the running debug server to attach to, used when --debug-port is not set.")
	fs.StringVar(&rf.bf2dir, bf2dirFlagName, "", "Game server installation directory. Discovered automatically if not set.")
	fs.StringVar(&rf.launcher, launcherFlagName, "", "Path to the debug launcher. Looked up next to bf2debug and on the PATH if not set.")
	fs.StringVar(&rf.host, hostFlagName, "", "Host of the debug server; only local addresses are accepted.")
	fs.StringSliceVar(&rf.envFiles, envFileFlagName, nil, "Environment (.env) file for the game server. Can be repeated.")
	fs.StringToStringVar(&rf.env, envFlagName, nil, "Environment variable for the game server, as KEY=VALUE. Can be repeated.")
	fs.BoolVarP(&rf.assumeYes, yesFlagName, "y", false, "Accept suggested values instead of prompting.")
}

// Builds the debug request from the descriptor file, the flags, the trailing arguments and the environment.
// Trailing arguments (after "--") replace the launcher arguments of the descriptor.
func (rf *requestFlags) buildRequest(cmd *cobra.Command, args []string) (session.DebugRequest, error) {
	var req session.DebugRequest
	if rf.descriptorPath != "" {
		var err error
		if req, err = session.LoadRequest(rf.descriptorPath); err != nil {
			return session.DebugRequest{}, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed(requestFlagName) {
		req.Kind = session.RequestKind(rf.request)
	}
	if fs.Changed(dapPortFlagName) {
		pointers.SetValue(&req.Config.DapPort, rf.dapPort)
	}
	if fs.Changed(debugPortFlagName) {
		pointers.SetValue(&req.Config.DebugPort, rf.debugPort)
	}
	if fs.Changed(debugServerFlagName) {
		pointers.SetValue(&req.Config.DebugServer, rf.debugServer)
	}
	if fs.Changed(bf2dirFlagName) {
		req.Config.TargetDir = rf.bf2dir
	}
	if fs.Changed(launcherFlagName) {
		req.Config.Launcher = rf.launcher
	}
	if fs.Changed(hostFlagName) {
		req.Config.Host = rf.host
	}
	if fs.Changed(envFileFlagName) {
		req.Config.EnvFiles = append(req.Config.EnvFiles, rf.envFiles...)
	}
	if fs.Changed(envFlagName) {
		if req.Config.Env == nil {
			req.Config.Env = map[string]string{}
		}
		maps.Copy(req.Config.Env, rf.env)
	}
	if len(args) > 0 {
		req.Config.TargetArgs = args
	}

	req.Config.ApplyEnvironment()
	return req, nil
}

func newSessionResolver(cfg session.Configuration, prompter prompt.Prompter, log logr.Logger) *session.Resolver {
	paths := bf2paths.NewResolver(bf2paths.NewPlatformProber(), prompter, log)

	env, envErr := launcher.Environment(cfg.EnvFiles, cfg.Env)
	if envErr != nil {
		log.Error(envErr, "Environment settings from .env file(s) were not applied", "EnvFiles", cfg.EnvFiles)
	}
	coordinator := launcher.NewCoordinator(process.NewOSExecutor(log), cfg.Launcher, log).WithEnvironment(env)

	return session.NewResolver(paths, coordinator, log)
}
