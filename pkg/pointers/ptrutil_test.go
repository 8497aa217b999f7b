/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package pointers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetIfNil(t *testing.T) {
	t.Parallel()

	var port *int
	require.True(t, SetIfNil(&port, 19021))
	require.Equal(t, 19021, *port)

	require.False(t, SetIfNil(&port, 4711), "an existing value must not be overwritten")
	require.Equal(t, 19021, *port)
}

func TestSetValue(t *testing.T) {
	t.Parallel()

	var port *int
	SetValue(&port, 4711)
	require.NotNil(t, port)
	require.Equal(t, 4711, *port)

	previous := port
	SetValue(&port, 5678)
	require.Same(t, previous, port, "existing storage is reused")
	require.Equal(t, 5678, *port)

	require.Panics(t, func() { SetValue[int](nil, 1) })
	require.Panics(t, func() { SetIfNil[int](nil, 1) })
}
