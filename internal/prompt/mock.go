/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package prompt

import (
	"context"
	"sync"
)

// MockPrompter implements Prompter with scripted responses for testing.
// Once the scripted responses are used up, the default value is returned.
type MockPrompter struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []MockCall
}

// MockResponse is a scripted answer: either a value or an error.
type MockResponse struct {
	Value string
	Err   error
}

// MockCall records the arguments of a single Input call.
type MockCall struct {
	Message string
	Default string
}

func NewMockPrompter(responses ...MockResponse) *MockPrompter {
	return &MockPrompter{
		responses: responses,
	}
}

// Answer is a shorthand for a scripted value response.
func Answer(value string) MockResponse {
	return MockResponse{Value: value}
}

// Fail is a shorthand for a scripted error response.
func Fail(err error) MockResponse {
	return MockResponse{Err: err}
}

func (mp *MockPrompter) Input(_ context.Context, message string, def string) (string, error) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.calls = append(mp.calls, MockCall{Message: message, Default: def})
	if len(mp.responses) == 0 {
		return def, nil
	}

	resp := mp.responses[0]
	mp.responses = mp.responses[1:]
	return resp.Value, resp.Err
}

// Calls returns the recorded Input calls.
func (mp *MockPrompter) Calls() []MockCall {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return append([]MockCall(nil), mp.calls...)
}

var _ Prompter = (*MockPrompter)(nil)
