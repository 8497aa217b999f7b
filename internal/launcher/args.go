/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package launcher

import (
	"slices"
	"strconv"
	"strings"
)

const (
	// Tells the launcher where the game server is installed.
	BF2PathFlag = "-bf2path="

	// Enables the embedded debug server and makes it listen on the given port.
	DapPortFlag = "-dapport="
)

// BuildArgs returns the launcher argument vector: the installation directory flag,
// then the caller arguments, then the debug server port flag.
// Flags the caller already supplied are not added again, so BuildArgs is idempotent.
// A non-positive dapPort omits the port flag.
func BuildArgs(baseDir string, args []string, dapPort int) []string {
	retval := make([]string, 0, len(args)+2)

	if !hasFlag(args, BF2PathFlag) {
		retval = append(retval, BF2PathFlag+baseDir)
	}
	retval = append(retval, args...)
	if dapPort > 0 && !hasFlag(args, DapPortFlag) {
		retval = append(retval, DapPortFlag+strconv.Itoa(dapPort))
	}

	return retval
}

func hasFlag(args []string, prefix string) bool {
	return slices.ContainsFunc(args, func(arg string) bool {
		return strings.HasPrefix(strings.ToLower(arg), prefix)
	})
}
