/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

// Package pointers holds helpers for optional values represented as pointers.
// A nil pointer means "not set", which lets configuration layers fill gaps without overriding each other.
package pointers

// Sets the value pointed to by a pointer to the given value, allocating new memory if the pointer is nil.
func SetValue[T any, PT *T](pp *PT, val T) {
	if pp == nil {
		panic("nil pointer passed as target for pointers.SetValue()")
	}

	if *pp == nil {
		*pp = new(T)
	}
	**pp = val
}

// Assigns the value only if the pointer has no value yet. Returns true if the value was assigned.
func SetIfNil[T any, PT *T](pp *PT, val T) bool {
	if pp == nil {
		panic("nil pointer passed as target for pointers.SetIfNil()")
	}

	if *pp != nil {
		return false
	}
	SetValue(pp, val)
	return true
}
