/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package resiliency

import (
	"fmt"
	"runtime/debug"

	"github.com/go-logr/logr"
)

// PanicError carries a recovered panic value and the stack of the goroutine that panicked.
// It is never retried by the functions of this package.
type PanicError struct {
	Value any
	Stack []byte
}

func (pe *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", pe.Value)
}

// Unwrap exposes the panic value when it is an error.
func (pe *PanicError) Unwrap() error {
	if err, isErr := pe.Value.(error); isErr {
		return err
	}
	return nil
}

// Turns a value returned by recover() into a PanicError and logs it with the call stack.
// Returns nil if there was no panic.
func MakePanicError(panicVal any, log logr.Logger) error {
	if panicVal == nil {
		return nil
	}

	pe := &PanicError{Value: panicVal, Stack: debug.Stack()}
	log.Error(pe, "A goroutine ended prematurely due to panic", "stack", string(pe.Stack))
	return Permanent(pe)
}
