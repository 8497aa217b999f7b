/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package osutil

import (
	"os"
	"strconv"
	"strings"
)

func EnvVarIntVal(varName string) (int, bool) {
	value, found := os.LookupEnv(varName)
	if !found || strings.TrimSpace(value) == "" {
		return 0, false
	}

	value = strings.TrimSpace(value)
	val, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, false
	}

	return int(val), true
}

// Returns the value of an environment variable holding a TCP port number.
// Values outside of the valid port range are treated as not set.
func EnvVarPortVal(varName string) (int, bool) {
	val, found := EnvVarIntVal(varName)
	if !found || val <= 0 || val > 65535 {
		return 0, false
	}
	return val, true
}

func EnvVarStringVal(varName string) (string, bool) {
	val, found := os.LookupEnv(varName)
	if !found || strings.TrimSpace(val) == "" {
		return "", false
	}
	return strings.TrimSpace(val), true
}

func EnvVarStringWithDefault(varName string, defaultVal string) string {
	if val, found := EnvVarStringVal(varName); found {
		return val
	} else {
		return defaultVal
	}
}
