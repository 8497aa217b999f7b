//go:build !windows

/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package bf2paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformProberWithoutRegistry(t *testing.T) {
	t.Parallel()

	assert.IsType(t, NoopProber{}, NewPlatformProber())
}
