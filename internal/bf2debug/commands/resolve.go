/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	cmds "github.com/bf2py/bf2debug/internal/commands"
	"github.com/bf2py/bf2debug/internal/prompt"
)

func NewResolveCommand(log logr.Logger) *cobra.Command {
	var rf requestFlags
	var format cmds.OutputFormat

	resolveCmd := &cobra.Command{
		Use:   "resolve [flags] [-- launcher arguments]",
		Short: "Resolves a debug request to the address of the debug server",
		Long: `Resolves a debug request to the address of the debug server.

	For a 'launch' request the game server is started through the debug launcher first.
	The installation directory is confirmed interactively unless --yes is given.
	The game server keeps running after this command exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := log.WithName("resolve")

			req, err := rf.buildRequest(cmd, args)
			if err != nil {
				return err
			}

			resolver := newSessionResolver(req.Config, prompt.NewDefault(rf.assumeYes), log)
			cd, err := resolver.Resolve(cmd.Context(), &req)
			if err != nil {
				return err
			}

			return cmds.WriteOutput(cmd.OutOrStdout(), format, cd.Address(), cd)
		},
	}

	rf.register(resolveCmd)
	cmds.AddOutputFlag(resolveCmd.Flags(), &format)

	return resolveCmd
}
