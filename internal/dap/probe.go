/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package dap

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/bf2py/bf2debug/pkg/resiliency"
)

// DialWithRetry connects to the debug server at address, retrying with exponential back-off
// until the server accepts the connection or the timeout elapses.
// A freshly launched game server needs a few seconds before its debug server listens.
func DialWithRetry(ctx context.Context, address string, timeout time.Duration, log logr.Logger) (Transport, error) {
	attempt := 0
	transport, err := resiliency.RetryGetExponentialWithTimeout(ctx, timeout, func() (Transport, error) {
		attempt++
		t, dialErr := DialTCP(ctx, address)
		if dialErr != nil {
			log.V(1).Info("Debug server not ready yet", "address", address, "attempt", attempt)
			return nil, dialErr
		}
		return t, nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w at %s: %w", ErrServerNotReady, address, err)
	}

	log.V(1).Info("Connected to debug server", "address", address, "attempts", attempt)
	return transport, nil
}
