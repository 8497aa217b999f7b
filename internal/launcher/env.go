/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package launcher

import (
	"fmt"
	"maps"
	"slices"

	"github.com/joho/godotenv"
)

// Environment returns the variables to add to the environment of the game server, as KEY=VALUE pairs
// sorted by key. Values from .env files are read in order (a later file overrides an earlier one)
// and explicit values override them. If a file cannot be read, only the explicit values are returned,
// together with the error.
func Environment(envFiles []string, explicit map[string]string) ([]string, error) {
	vars := map[string]string{}

	var readErr error
	if len(envFiles) > 0 {
		fromFiles, err := godotenv.Read(envFiles...)
		if err != nil {
			readErr = fmt.Errorf("could not read environment file(s) %v: %w", envFiles, err)
		} else {
			maps.Copy(vars, fromFiles)
		}
	}
	maps.Copy(vars, explicit)

	env := make([]string, 0, len(vars))
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		env = append(env, key+"="+vars[key])
	}
	return env, readErr
}
