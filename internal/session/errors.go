/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package session

import (
	"errors"
	"fmt"

	"github.com/bf2py/bf2debug/internal/bf2paths"
)

var (
	ErrMissingConfiguration = errors.New("required configuration is missing")
	ErrLaunchFailed         = errors.New("the game server could not be started")
	ErrUnsupportedRequest   = errors.New("unsupported request kind")
	ErrResolutionCancelled  = bf2paths.ErrResolutionCancelled
)

// RequestError is returned by the Resolver for every failed resolution.
type RequestError struct {
	Kind RequestKind
	Err  error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("failed to resolve %q request: %v", string(e.Kind), e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func requestError(kind RequestKind, err error) error {
	return &RequestError{Kind: kind, Err: err}
}
