/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package dap

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bf2py/bf2debug/pkg/testutil"
)

func reserveAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	address := l.Addr().String()
	require.NoError(t, l.Close())
	return address
}

func TestDialWithRetryWaitsForServer(t *testing.T) {
	t.Parallel()

	ctx, cancel := testutil.GetTestContext(t, 30*time.Second)
	defer cancel()

	address := reserveAddress(t)
	accepted := make(chan net.Conn, 1)
	go func() {
		time.Sleep(300 * time.Millisecond)
		l, err := net.Listen("tcp", address)
		if err != nil {
			close(accepted)
			return
		}
		defer l.Close()
		conn, err := l.Accept()
		if err != nil {
			close(accepted)
			return
		}
		accepted <- conn
	}()

	transport, err := DialWithRetry(ctx, address, 20*time.Second, testutil.NewLogForTesting(t.Name()))
	require.NoError(t, err)
	defer func() { _ = transport.Close() }()

	conn, ok := <-accepted
	require.True(t, ok, "the test server could not listen on %s", address)
	_ = conn.Close()
}

func TestDialWithRetryTimesOut(t *testing.T) {
	t.Parallel()

	ctx, cancel := testutil.GetTestContext(t, 30*time.Second)
	defer cancel()

	_, err := DialWithRetry(ctx, reserveAddress(t), 500*time.Millisecond, testutil.NewLogForTesting(t.Name()))
	require.ErrorIs(t, err, ErrServerNotReady)
}
