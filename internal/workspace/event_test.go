/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModPathEvent(t *testing.T) {
	t.Parallel()

	base, module, err := ParseModPathEvent(ModPathEvent{Type: "modpath", Data: `C:\Program Files (x86)\EA Games\Battlefield 2 Server;mods/BF2`})
	require.NoError(t, err)
	assert.Equal(t, `c:\program files (x86)\ea games\battlefield 2 server`, base)
	assert.Equal(t, "mods/bf2", module)
}

func TestParseModPathEventErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		evt      ModPathEvent
		expected error
	}{
		{"wrong type", ModPathEvent{Type: "output", Data: "a;b"}, ErrUnsupportedEvent},
		{"no separator", ModPathEvent{Type: "modpath", Data: "c:/game"}, ErrMalformedEvent},
		{"empty module", ModPathEvent{Type: "modpath", Data: "c:/game;"}, ErrMalformedEvent},
		{"empty base", ModPathEvent{Type: "modpath", Data: ";mods/bf2"}, ErrMalformedEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := ParseModPathEvent(tt.evt)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}
