/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"encoding/json"
	"runtime"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/bf2py/bf2debug/internal/bf2paths"
	"github.com/bf2py/bf2debug/internal/launcher"
	"github.com/bf2py/bf2debug/internal/prompt"
	"github.com/bf2py/bf2debug/internal/version"
)

func NewInfoCommand(log logr.Logger) (*cobra.Command, error) {
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Prints information about the application and the game server installation it would use.",
		Long:  `Prints information about the application and the game server installation it would use.`,
		RunE:  getInfo(log),
		Args:  cobra.NoArgs,
	}

	return infoCmd, nil
}

type installationInfo struct {
	Path   string `json:"path"`
	Source string `json:"source"`
}

type launcherInfo struct {
	Path  string `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
}

type information struct {
	Version      version.VersionOutput `json:"version"`
	Installation installationInfo      `json:"installation"`
	Launcher     launcherInfo          `json:"launcher"`
}

func getInfo(log logr.Logger) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := log.WithName("info")

		resolver := bf2paths.NewResolver(bf2paths.NewPlatformProber(), prompt.AcceptDefault{}, log)
		location := resolver.Suggest(runtime.GOOS, "")

		info := information{
			Version:      version.Version(),
			Installation: installationInfo{Path: location.Path, Source: location.Source.String()},
		}

		if program, err := launcher.FindProgram(""); err != nil {
			info.Launcher.Error = err.Error()
		} else {
			info.Launcher.Path = program
		}

		content, err := json.Marshal(info)
		if err != nil {
			log.Error(err, "could not serialize application information")
			return err
		}

		_, err = cmd.OutOrStdout().Write(WithNewline(content))
		return err
	}
}
