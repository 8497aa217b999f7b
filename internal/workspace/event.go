/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package workspace

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ModPathEventType = "modpath"
)

var (
	ErrUnsupportedEvent = errors.New("unsupported folder synchronization event")
	ErrMalformedEvent   = errors.New("malformed folder synchronization event")
)

// ModPathEvent is sent by the debuggee once the game server knows which mod it runs.
// Data holds "<server directory>;<mod directory relative to the server directory>".
type ModPathEvent struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// ParseModPathEvent extracts the base directory and the module name from the event.
// The data is case-folded to lowercase before use.
func ParseModPathEvent(evt ModPathEvent) (string, string, error) {
	if evt.Type != ModPathEventType {
		return "", "", fmt.Errorf("%w: '%s'", ErrUnsupportedEvent, evt.Type)
	}

	base, module, found := strings.Cut(strings.ToLower(evt.Data), ";")
	base = strings.TrimSpace(base)
	module = strings.TrimSpace(module)
	if !found || base == "" || module == "" {
		return "", "", fmt.Errorf("%w: expected '<base>;<module>', got '%s'", ErrMalformedEvent, evt.Data)
	}

	return base, module, nil
}
