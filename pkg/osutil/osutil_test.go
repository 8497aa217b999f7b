/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package osutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWindowsPlatform(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWindowsPlatform("windows"))
	assert.True(t, IsWindowsPlatform("Windows"))
	assert.False(t, IsWindowsPlatform("linux"))
	assert.False(t, IsWindowsPlatform("darwin"))
	assert.False(t, IsWindowsPlatform(""))
}

func TestExecutableName(t *testing.T) {
	t.Parallel()

	if IsWindows() {
		assert.Equal(t, "debug-launcher.exe", ExecutableName("debug-launcher"))
		assert.Equal(t, "debug-launcher.EXE", ExecutableName("debug-launcher.EXE"))
	} else {
		assert.Equal(t, "debug-launcher", ExecutableName("debug-launcher"))
	}
}

func TestEnvVarPortVal(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
		found    bool
	}{
		{"valid port", "19021", 19021, true},
		{"padded", " 4711 ", 4711, true},
		{"zero", "0", 0, false},
		{"negative", "-1", 0, false},
		{"too large", "70000", 0, false},
		{"not a number", "abc", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BF2DEBUG_TEST_PORT", tt.value)
			val, found := EnvVarPortVal("BF2DEBUG_TEST_PORT")
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, val)
		})
	}
}

func TestEnvVarStringWithDefault(t *testing.T) {
	t.Setenv("BF2DEBUG_TEST_STRING", "  ")
	assert.Equal(t, "fallback", EnvVarStringWithDefault("BF2DEBUG_TEST_STRING", "fallback"))

	t.Setenv("BF2DEBUG_TEST_STRING", "value")
	assert.Equal(t, "value", EnvVarStringWithDefault("BF2DEBUG_TEST_STRING", "fallback"))
}
