/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/bf2py/bf2debug/internal/version"
)

const (
	// Free-form text written to the log right after the start message, for example the editor session ID.
	BF2DEBUG_LOGGING_CONTEXT = "BF2DEBUG_LOGGING_CONTEXT"
)

func NewVersionCommand(log logr.Logger) (*cobra.Command, error) {
	var format OutputFormat

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Prints version information",
		Long:  `Prints version information.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := version.Version()
			if err := WriteOutput(cmd.OutOrStdout(), format, versionText(cmd.Root().Name(), v), v); err != nil {
				log.WithName("version").Error(err, "Could not write version information")
				return err
			}
			return nil
		},
	}

	AddOutputFlag(versionCmd.Flags(), &format)
	return versionCmd, nil
}

// LogVersion returns a cobra hook that records the version and command line of the program at start.
func LogVersion(log logr.Logger, programStartMsg string) func(_ *cobra.Command, _ []string) {
	return func(_ *cobra.Command, _ []string) {
		launchPath, pathErr := os.Executable()
		if pathErr != nil {
			launchPath = os.Args[0]
		}

		v := version.Version()
		log.V(1).Info(programStartMsg,
			"PID", os.Getpid(),
			"Exe", launchPath,
			"Args", os.Args[1:],
			"Version", v.Version,
			"Commit", v.CommitHash,
			"Platform", v.Platform,
		)

		if logContext := os.Getenv(BF2DEBUG_LOGGING_CONTEXT); logContext != "" {
			log.V(1).Info(logContext)
		}
	}
}

func versionText(program string, v version.VersionOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", program, v.Version)
	if v.CommitHash != "" {
		fmt.Fprintf(&sb, " (commit %s)", v.CommitHash)
	}
	if v.BuildTime != nil && !v.BuildTime.IsZero() {
		fmt.Fprintf(&sb, " built %s", v.BuildTime.Format("2006-01-02"))
	}
	fmt.Fprintf(&sb, " %s %s", v.GoVersion, v.Platform)
	return sb.String()
}
