/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package testutil

import (
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/mock"
)

// MockLoggerSink is a logr.LogSink that records calls, for verifying what a component logs.
type MockLoggerSink struct {
	mock.Mock
}

// NewMockLogger returns a logger backed by a new mock sink.
// Initialization is expected; verbose (V > 0) messages are disabled and not recorded.
func NewMockLogger() (logr.Logger, *MockLoggerSink) {
	sink := &MockLoggerSink{}
	sink.On("Init", mock.Anything).Return()
	sink.On("Enabled", 0).Return(true).Maybe()
	sink.On("Enabled", mock.MatchedBy(func(level int) bool { return level > 0 })).Return(false).Maybe()
	return logr.New(sink), sink
}

func (m *MockLoggerSink) Enabled(level int) bool {
	args := m.Called(level)
	return args.Bool(0)
}

func (m *MockLoggerSink) Error(err error, msg string, keysAndValues ...any) {
	m.Called(err, msg, keysAndValues)
}

func (m *MockLoggerSink) Info(level int, msg string, keysAndValues ...any) {
	m.Called(level, msg, keysAndValues)
}

func (m *MockLoggerSink) Init(info logr.RuntimeInfo) {
	m.Called(info)
}

func (m *MockLoggerSink) WithName(name string) logr.LogSink {
	args := m.Called(name)
	return args.Get(0).(logr.LogSink)
}

func (m *MockLoggerSink) WithValues(keysAndValues ...any) logr.LogSink {
	args := m.Called(keysAndValues)
	return args.Get(0).(logr.LogSink)
}

var _ logr.LogSink = (*MockLoggerSink)(nil)
