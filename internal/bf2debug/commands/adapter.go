/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	cmds "github.com/bf2py/bf2debug/internal/commands"
	"github.com/bf2py/bf2debug/internal/dap"
	"github.com/bf2py/bf2debug/internal/prompt"
	"github.com/bf2py/bf2debug/internal/workspace"
	"github.com/bf2py/bf2debug/pkg/logger"
)

const (
	defaultConnectTimeout = time.Minute
)

func NewAdapterCommand(log logr.Logger) *cobra.Command {
	var (
		rf             requestFlags
		workspacePath  string
		connectTimeout time.Duration
	)

	adapterCmd := &cobra.Command{
		Use:   "adapter [flags] [-- launcher arguments]",
		Short: "Runs as the debug adapter of an editor",
		Long: `Runs as the debug adapter of an editor.

	The editor speaks the Debug Adapter Protocol over the standard streams of this command.
	The debug request is resolved first (starting the game server for 'launch' requests),
	then messages are forwarded to the debug server embedded in the game server.
	Mod path notifications of the debug server update the workspace file given with --workspace.

	Standard input carries protocol messages, so suggested values are accepted without prompting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := log.WithName("adapter").WithValues("Session", uuid.New().String())
			ctx := cmds.Monitor(cmd.Context(), log)

			req, err := rf.buildRequest(cmd, args)
			if err != nil {
				return err
			}

			resolver := newSessionResolver(req.Config, prompt.AcceptDefault{}, log)
			cd, err := resolver.Resolve(ctx, &req)
			if err != nil {
				return err
			}

			downstream, err := dap.DialWithRetry(ctx, cd.Address(), connectTimeout, log)
			if err != nil {
				return err
			}
			upstream := dap.NewStdioTransport(os.Stdin, os.Stdout)

			var handler dap.MessageHandler
			if workspacePath != "" {
				synchronizer := workspace.NewSynchronizer(workspace.NewFileStore(workspacePath), log)
				handler = dap.ModPathHandler(synchronizer, log)
			}

			log.Info("debug adapter ready", "Server", cd.Address(), "Workspace", workspacePath)
			proxy := dap.NewProxy(upstream, downstream, dap.ProxyConfig{
				Handler: handler,
				Logger:  log.WithName("proxy"),
			})
			err = proxy.Start(ctx)
			log.Info("debug session ended", "Uptime", logger.Uptime().Round(time.Millisecond))
			return err
		},
	}

	rf.register(adapterCmd)
	adapterCmd.Flags().StringVarP(&workspacePath, workspaceFlagName, "w", "", "The .code-workspace file to keep in sync with the active mod.")
	adapterCmd.Flags().DurationVar(&connectTimeout, "connect-timeout", defaultConnectTimeout, "How long to wait for the debug server to accept connections.")
	cmds.AddMonitorFlags(adapterCmd)

	return adapterCmd
}
