/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package dap

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/bf2py/bf2debug/internal/workspace"
)

const (
	// Custom event the embedded debug server uses for notifications meant for the editor extension.
	CustomEventName = "bf2py"
)

// MessageHandler is a function that can inspect and modify DAP messages as they flow
// through the proxy. It receives the message and its flow direction, and returns:
//   - modified: the (possibly modified) message to forward
//   - forward: whether to forward the message (false to suppress)
//
// If the handler returns nil for modified but true for forward, the original message
// is forwarded unchanged.
type MessageHandler func(msg *Message, direction Direction) (modified *Message, forward bool)

// ComposeHandlers combines multiple message handlers into a single handler.
// Handlers are called in order; if any handler returns forward=false, the chain stops.
// The modified message from each handler is passed to the next handler.
func ComposeHandlers(handlers ...MessageHandler) MessageHandler {
	return func(msg *Message, direction Direction) (*Message, bool) {
		current := msg
		for _, h := range handlers {
			if h == nil {
				continue
			}

			modified, forward := h(current, direction)
			if !forward {
				return nil, false
			}

			if modified != nil {
				current = modified
			}
		}

		return current, true
	}
}

// ModPathEventSink receives the mod path notifications of the debug server.
type ModPathEventSink interface {
	HandleEvent(evt workspace.ModPathEvent) (workspace.Patch, error)
}

// ModPathHandler returns a handler that consumes the custom mod path events sent by the
// debug server and hands them to the sink. The events are not forwarded to the editor.
func ModPathHandler(sink ModPathEventSink, log logr.Logger) MessageHandler {
	return func(msg *Message, direction Direction) (*Message, bool) {
		if direction != Downstream || !msg.IsEvent(CustomEventName) {
			return msg, true
		}

		var evt workspace.ModPathEvent
		if err := msg.Body(&evt); err != nil {
			log.Error(err, "Ignoring malformed debug server notification", "message", msg.String())
			return nil, false
		}

		patch, err := sink.HandleEvent(evt)
		if errors.Is(err, workspace.ErrUnsupportedEvent) {
			log.V(1).Info("Ignoring debug server notification", "type", evt.Type)
			return nil, false
		}
		if err != nil {
			log.Error(err, "Could not synchronize workspace folders", "type", evt.Type, "data", evt.Data)
			return nil, false
		}

		log.V(1).Info("Workspace folders synchronized", "removed", len(patch.Remove), "inserted", len(patch.Insert))
		return nil, false
	}
}
