/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bf2py/bf2debug/pkg/osutil"
	"github.com/bf2py/bf2debug/pkg/pointers"
)

const (
	BF2DEBUG_DAP_PORT = "BF2DEBUG_DAP_PORT" // Port of the embedded debug server, unless set by the session descriptor
	BF2DEBUG_BF2DIR   = "BF2DEBUG_BF2DIR"   // Game server installation directory, unless set by the session descriptor
	BF2DEBUG_LAUNCHER = "BF2DEBUG_LAUNCHER" // Path to the debug launcher, unless set by the session descriptor
)

// Session descriptors are written as editor launch configurations,
// which use both the game-specific and the generic property names.
type descriptorFile struct {
	Request     RequestKind       `yaml:"request"`
	DapPort     *int              `yaml:"dapPort"`
	DebugServer *int              `yaml:"debugServer"`
	DebugPort   *int              `yaml:"debugPort"`
	BF2Dir      string            `yaml:"bf2dir"`
	TargetDir   string            `yaml:"targetDir"`
	BF2Args     []string          `yaml:"bf2args"`
	TargetArgs  []string          `yaml:"targetArgs"`
	Launcher    string            `yaml:"launcher"`
	Host        string            `yaml:"host"`
	EnvFile     string            `yaml:"envFile"`
	EnvFiles    []string          `yaml:"envFiles"`
	Env         map[string]string `yaml:"env"`
}

// LoadRequest reads a session descriptor from a JSON or YAML file.
func LoadRequest(path string) (DebugRequest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return DebugRequest{}, fmt.Errorf("could not read session descriptor '%s': %w", path, err)
	}

	req, err := ParseRequest(content)
	if err != nil {
		return DebugRequest{}, fmt.Errorf("session descriptor '%s' is invalid: %w", path, err)
	}

	// Environment files are relative to the descriptor, like the other files of a launch configuration.
	for i, envFile := range req.Config.EnvFiles {
		if !filepath.IsAbs(envFile) {
			req.Config.EnvFiles[i] = filepath.Join(filepath.Dir(path), envFile)
		}
	}
	return req, nil
}

// ParseRequest parses a session descriptor. JSON documents are accepted as YAML.
// Properties unrelated to the debug session are ignored.
func ParseRequest(content []byte) (DebugRequest, error) {
	var df descriptorFile
	dec := yaml.NewDecoder(bytes.NewReader(content))
	if err := dec.Decode(&df); err != nil && !errors.Is(err, io.EOF) {
		return DebugRequest{}, err
	}

	cfg := Configuration{
		DapPort:     df.DapPort,
		DebugServer: df.DebugServer,
		DebugPort:   df.DebugPort,
		TargetDir:   firstNonEmpty(df.BF2Dir, df.TargetDir),
		TargetArgs:  df.BF2Args,
		Launcher:    df.Launcher,
		Host:        df.Host,
		Env:         df.Env,
	}
	if df.EnvFile != "" {
		cfg.EnvFiles = append(cfg.EnvFiles, df.EnvFile)
	}
	cfg.EnvFiles = append(cfg.EnvFiles, df.EnvFiles...)
	if cfg.TargetArgs == nil {
		cfg.TargetArgs = df.TargetArgs
	}

	return DebugRequest{
		Kind:   RequestKind(strings.TrimSpace(string(df.Request))),
		Config: cfg,
	}, nil
}

// ApplyEnvironment fills in settings the configuration leaves unset from the environment.
func (c *Configuration) ApplyEnvironment() {
	if port, found := osutil.EnvVarPortVal(BF2DEBUG_DAP_PORT); found {
		pointers.SetIfNil(&c.DapPort, port)
	}
	if c.TargetDir == "" {
		c.TargetDir = osutil.EnvVarStringWithDefault(BF2DEBUG_BF2DIR, "")
	}
	if c.Launcher == "" {
		c.Launcher = osutil.EnvVarStringWithDefault(BF2DEBUG_LAUNCHER, "")
	}
}

// Validate checks the settings that do not depend on the request kind.
func (c *Configuration) Validate() error {
	var errs []error

	if c.Host != "" && !isLocalHost(c.Host) {
		errs = append(errs, fmt.Errorf("host '%s' is not a local address; the debug server only runs on this machine", c.Host))
	}
	if c.DapPort != nil && !validPort(c.DapPort) {
		errs = append(errs, fmt.Errorf("dapPort %d is not a valid port number", *c.DapPort))
	}

	return errors.Join(errs...)
}

func isLocalHost(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
