/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

/*
Package dap provides Debug Adapter Protocol (DAP) plumbing between an editor and the
debug server embedded in a Battlefield 2 game server.

# Architecture Overview

The editor talks DAP over the standard streams of the bf2debug adapter process.
The adapter connects to the embedded debug server over TCP and forwards messages
in both directions:

	editor <-- stdio --> Proxy <-- TCP --> embedded debug server

Messages are forwarded in their wire form. Only the envelope (type, seq, command, event)
is parsed, so custom events the go-dap codec does not know pass through unchanged.

# Key Components

  - Transport: reads and writes DAP base messages over TCP or standard streams
  - Proxy: runs one message pump per direction and stops when either side disconnects
  - MessageHandler: inspects, modifies or consumes messages flowing through the proxy
  - DialWithRetry: waits for a freshly launched debug server to accept connections

# Custom Events

The debug server reports the active mod with a custom "bf2py" event:

	{"type": "event", "event": "bf2py", "body": {"type": "modpath", "data": "<server dir>;<mod dir>"}}

ModPathHandler consumes these events and passes them to the workspace folder synchronizer.
*/
package dap
