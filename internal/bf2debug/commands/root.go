/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	cmds "github.com/bf2py/bf2debug/internal/commands"
	"github.com/bf2py/bf2debug/pkg/logger"
)

func NewRootCmd(logger *logger.Logger) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		SilenceErrors: true,
		Use:           "bf2debug",
		Short:         "Bootstraps debug sessions for Battlefield 2 game server scripts",
		Long: `Bootstraps debug sessions for Battlefield 2 game server scripts.

	bf2debug finds the game server installation, starts the game server with the embedded
	Python debug server, and connects an editor to it using the Debug Adapter Protocol.`,
		SilenceUsage:     true,
		PersistentPreRun: cmds.LogVersion(logger.Logger, "Starting bf2debug..."),
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	logger.AddLevelFlag(rootCmd.PersistentFlags())

	var err error
	var cmd *cobra.Command

	if cmd, err = cmds.NewVersionCommand(logger.Logger); err != nil {
		return nil, fmt.Errorf("could not set up 'version' command: %w", err)
	} else {
		rootCmd.AddCommand(cmd)
	}

	if cmd, err = cmds.NewInfoCommand(logger.Logger); err != nil {
		return nil, fmt.Errorf("could not set up 'info' command: %w", err)
	} else {
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewResolveCommand(logger.Logger))
	rootCmd.AddCommand(NewLocateCommand(logger.Logger))
	rootCmd.AddCommand(NewSyncCommand(logger.Logger))
	rootCmd.AddCommand(NewAdapterCommand(logger.Logger))

	return rootCmd, nil
}
