/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
)

// Overrides all test context timeouts (as a Go duration, e.g. "30m"), for stepping through tests in a debugger.
const TestContextTimeoutEnvVar = "BF2DEBUG_TEST_CONTEXT_TIMEOUT"

// Returns a context that is done after testTimeout or at the test deadline, whichever comes first.
// A zero testTimeout means only the test deadline applies.
func GetTestContext(t *testing.T, testTimeout time.Duration) (context.Context, context.CancelFunc) {
	if override, found := os.LookupEnv(TestContextTimeoutEnvVar); found {
		timeout, err := time.ParseDuration(override)
		if err != nil {
			panic(fmt.Sprintf("%s value '%s' is invalid: %s", TestContextTimeoutEnvVar, override, err.Error()))
		}
		return context.WithTimeout(context.Background(), timeout)
	}

	var deadline time.Time
	if testTimeout > 0 {
		deadline = time.Now().Add(testTimeout)
	}
	if testDeadline, ok := t.Deadline(); ok && (deadline.IsZero() || testDeadline.Before(deadline)) {
		deadline = testDeadline
	}

	if deadline.IsZero() {
		return context.WithCancel(context.Background())
	}
	return context.WithDeadline(context.Background(), deadline)
}
