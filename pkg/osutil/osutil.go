/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package osutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	PlatformWindows = "windows"
)

var (
	lf   = []byte("\n")
	crlf = []byte("\r\n")
)

func LF() []byte {
	return lf
}

func CRLF() []byte {
	return crlf
}

func IsWindows() bool {
	return runtime.GOOS == PlatformWindows
}

// Returns true if the passed platform name (a GOOS value) belongs to the Windows family.
func IsWindowsPlatform(platform string) bool {
	return strings.EqualFold(platform, PlatformWindows)
}

func LineSep() []byte {
	if IsWindows() {
		return crlf
	} else {
		return lf
	}
}

// Returns the file name of an executable for the current platform,
// i.e. appends ".exe" on Windows unless the name already has that extension.
func ExecutableName(name string) string {
	if IsWindows() && !strings.EqualFold(filepath.Ext(name), ".exe") {
		return name + ".exe"
	}
	return name
}

// Returns the full path to the currently running executable, with symlinks resolved.
func ThisExecutablePath() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(exePath)
	if err != nil {
		return exePath, nil
	}
	return resolved, nil
}
