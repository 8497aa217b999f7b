/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package session

import (
	"net"
	"strconv"
)

type RequestKind string

const (
	RequestKindLaunch RequestKind = "launch"
	RequestKindAttach RequestKind = "attach"
)

const (
	// Port the embedded debug server listens on unless configured otherwise.
	DefaultDapPort = 19021

	// The debug server always runs on this machine.
	DefaultHost = "127.0.0.1"
)

// Configuration holds the settings of a debug session.
// Pointer fields distinguish "not set" from a zero value.
type Configuration struct {
	DapPort     *int     `json:"dapPort,omitempty"`
	DebugServer *int     `json:"debugServer,omitempty"`
	DebugPort   *int     `json:"debugPort,omitempty"`
	TargetDir   string   `json:"bf2dir,omitempty"`
	TargetArgs  []string `json:"bf2args,omitempty"`
	Launcher    string   `json:"launcher,omitempty"`
	Host        string   `json:"host,omitempty"`

	// Added to the environment of the game server; explicit values override the files.
	EnvFiles []string          `json:"envFiles,omitempty"`
	Env      map[string]string `json:"env,omitempty"`
}

type DebugRequest struct {
	Kind   RequestKind   `json:"request"`
	Config Configuration `json:"config"`
}

// ConnectionDescriptor tells the editor where to connect its debug adapter.
type ConnectionDescriptor struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

func (cd ConnectionDescriptor) Address() string {
	return net.JoinHostPort(cd.Host, strconv.Itoa(cd.Port))
}

func (cd ConnectionDescriptor) String() string {
	return cd.Address()
}

func validPort(port *int) bool {
	return port != nil && *port > 0 && *port <= 65535
}
