/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"runtime"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/bf2py/bf2debug/internal/bf2paths"
	cmds "github.com/bf2py/bf2debug/internal/commands"
	"github.com/bf2py/bf2debug/internal/prompt"
)

type locateResult struct {
	Path   string `json:"path"`
	Source string `json:"source"`
}

func NewLocateCommand(log logr.Logger) *cobra.Command {
	var (
		hint      string
		platform  string
		assumeYes bool
		format    cmds.OutputFormat
	)

	locateCmd := &cobra.Command{
		Use:   "locate",
		Short: "Finds the game server installation directory",
		Long: `Finds the game server installation directory.

	On Windows the registry entries written by the game server installer are consulted.
	Elsewhere, or when nothing is registered, the default installation directory is suggested.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := log.WithName("locate")

			resolver := bf2paths.NewResolver(bf2paths.NewPlatformProber(), prompt.NewDefault(assumeYes), log)
			location, err := resolver.Resolve(cmd.Context(), platform, hint)
			if err != nil {
				return err
			}

			return cmds.WriteOutput(cmd.OutOrStdout(), format, location.Path, locateResult{
				Path:   location.Path,
				Source: location.Source.String(),
			})
		},
	}

	locateCmd.Flags().StringVar(&hint, bf2dirFlagName, "", "Directory to suggest instead of the discovered one.")
	locateCmd.Flags().StringVar(&platform, "platform", runtime.GOOS, "Platform whose conventions are used (a GOOS value).")
	locateCmd.Flags().BoolVarP(&assumeYes, yesFlagName, "y", false, "Accept the suggested directory instead of prompting.")
	cmds.AddOutputFlag(locateCmd.Flags(), &format)

	return locateCmd
}
