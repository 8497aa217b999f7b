/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	cmds "github.com/bf2py/bf2debug/internal/commands"
	"github.com/bf2py/bf2debug/internal/workspace"
)

const (
	workspaceFlagName = "workspace"
)

type syncResult struct {
	Inserted int                `json:"inserted"`
	Removed  int                `json:"removed"`
	Folders  []workspace.Folder `json:"folders"`
}

func NewSyncCommand(log logr.Logger) *cobra.Command {
	var (
		workspacePath string
		eventJSON     string
		baseDir       string
		moduleName    string
		format        cmds.OutputFormat
	)

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Adds the game server folders to an editor workspace",
		Long: `Adds the game server folders to an editor workspace.

	The python and admin folders of the game server and the folder of the active mod are added
	to the folder list of a .code-workspace file. Folders already present are not duplicated,
	and a folder of a previously active mod is replaced.

	The folders are given either as a mod path event (--event '{"type":"modpath","data":"<dir>;<mod>"}')
	or with --base and --module.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := log.WithName("sync")

			store := workspace.NewFileStore(workspacePath)
			synchronizer := workspace.NewSynchronizer(store, log)

			var patch workspace.Patch
			var err error
			switch {
			case eventJSON != "" && (baseDir != "" || moduleName != ""):
				return errors.New("--event cannot be combined with --base or --module")
			case eventJSON != "":
				var evt workspace.ModPathEvent
				if err = json.Unmarshal([]byte(eventJSON), &evt); err != nil {
					return fmt.Errorf("%w: %w", workspace.ErrMalformedEvent, err)
				}
				patch, err = synchronizer.HandleEvent(evt)
			case baseDir != "":
				patch, err = synchronizer.Sync(baseDir, moduleName)
			default:
				return errors.New("either --event or --base is required")
			}
			if err != nil {
				return err
			}

			folders, err := store.Load()
			if err != nil {
				return err
			}

			text := "workspace folders already synchronized"
			if !patch.IsEmpty() {
				text = fmt.Sprintf("workspace folders updated: %d inserted, %d removed", len(patch.Insert), len(patch.Remove))
			}
			return cmds.WriteOutput(cmd.OutOrStdout(), format, text, syncResult{
				Inserted: len(patch.Insert),
				Removed:  len(patch.Remove),
				Folders:  folders,
			})
		},
	}

	syncCmd.Flags().StringVarP(&workspacePath, workspaceFlagName, "w", "", "The .code-workspace file to update.")
	syncCmd.Flags().StringVar(&eventJSON, "event", "", "Mod path event as sent by the debug server.")
	syncCmd.Flags().StringVar(&baseDir, "base", "", "Game server installation directory.")
	syncCmd.Flags().StringVar(&moduleName, "module", "", "Mod directory, relative to the installation directory.")
	_ = syncCmd.MarkFlagRequired(workspaceFlagName)
	cmds.AddOutputFlag(syncCmd.Flags(), &format)

	return syncCmd
}
