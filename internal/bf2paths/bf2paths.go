/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

// Package bf2paths locates the Battlefield 2 (Server) installation directory.
package bf2paths

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/bf2py/bf2debug/internal/prompt"
	"github.com/bf2py/bf2debug/pkg/osutil"
)

const (
	DefaultWindowsPath = `C:\Program Files (x86)\EA Games\Battlefield 2 Server`
	DefaultUnixPath    = "/home/bf2server"

	PromptMessage = "Please enter the Battlefield 2 (Server) directory"
)

// ErrResolutionCancelled is returned when the user declines to supply a directory.
var ErrResolutionCancelled = errors.New("installation directory resolution was cancelled")

type Source uint8

const (
	SourceDiscovered Source = iota
	SourceDefault
	SourceConfigured
	SourceUserOverride
)

func (s Source) String() string {
	switch s {
	case SourceDiscovered:
		return "discovered"
	case SourceDefault:
		return "default"
	case SourceConfigured:
		return "configured"
	case SourceUserOverride:
		return "user-override"
	default:
		return "unknown"
	}
}

// Location is a resolved installation directory together with where it came from.
type Location struct {
	Path   string
	Source Source
}

// ProbeKey identifies a registry value: a hierarchical key path and the name of the value under it.
type ProbeKey struct {
	Key       string
	ValueName string
}

// The server installer and the retail game installer use different keys; the server one wins.
var DefaultProbeKeys = []ProbeKey{
	{Key: `HKLM\SOFTWARE\EA GAMES\Battlefield 2 Server`, ValueName: "GAMEDIR"},
	{Key: `HKLM\SOFTWARE\Electronic Arts\EA Games\Battlefield 2`, ValueName: "InstallDir"},
}

// Prober looks up a single key/value pair. A failed lookup is reported as "not found", never as an error.
type Prober interface {
	Probe(key, valueName string) (string, bool)
}

// MapProber serves lookups from an in-memory map keyed by ProbeKey.
type MapProber map[ProbeKey]string

func (m MapProber) Probe(key, valueName string) (string, bool) {
	val, found := m[ProbeKey{Key: key, ValueName: valueName}]
	return val, found && val != ""
}

// NoopProber never finds anything.
type NoopProber struct{}

func (NoopProber) Probe(string, string) (string, bool) {
	return "", false
}

// DefaultPath returns the hard-coded installation directory for a platform (a GOOS value).
func DefaultPath(platform string) string {
	if osutil.IsWindowsPlatform(platform) {
		return DefaultWindowsPath
	}
	return DefaultUnixPath
}

// SplitRegistryKey splits a key such as `HKLM\SOFTWARE\EA GAMES` into its root ("HKLM") and the sub-key path.
func SplitRegistryKey(key string) (string, string, error) {
	root, path, found := strings.Cut(strings.Trim(key, `\`), `\`)
	if !found || root == "" || path == "" {
		return "", "", fmt.Errorf("registry key '%s' must have the form ROOT\\path", key)
	}
	return strings.ToUpper(root), path, nil
}

type Resolver struct {
	prober    Prober
	prompter  prompt.Prompter
	probeKeys []ProbeKey
	log       logr.Logger
}

func NewResolver(prober Prober, prompter prompt.Prompter, log logr.Logger) *Resolver {
	if prober == nil {
		prober = NoopProber{}
	}
	return &Resolver{
		prober:    prober,
		prompter:  prompter,
		probeKeys: DefaultProbeKeys,
		log:       log.WithName("path-resolver"),
	}
}

// Suggest returns the directory offered to the user, without prompting.
// A non-empty hint (a directory from the session configuration) takes precedence over probing.
func (r *Resolver) Suggest(platform string, hint string) Location {
	if hint = strings.TrimSpace(hint); hint != "" {
		return Location{Path: hint, Source: SourceConfigured}
	}

	if osutil.IsWindowsPlatform(platform) {
		for _, pk := range r.probeKeys {
			if val, found := r.prober.Probe(pk.Key, pk.ValueName); found {
				r.log.V(1).Info("installation directory found in registry", "Key", pk.Key, "Value", pk.ValueName, "Path", val)
				return Location{Path: val, Source: SourceDiscovered}
			}
			r.log.V(1).Info("registry value not found", "Key", pk.Key, "Value", pk.ValueName)
		}
	}

	return Location{Path: DefaultPath(platform), Source: SourceDefault}
}

// Resolve determines the installation directory for a platform and lets the user confirm or override it.
// Exactly one prompt is shown per call.
func (r *Resolver) Resolve(ctx context.Context, platform string, hint string) (Location, error) {
	suggested := r.Suggest(platform, hint)

	answer, err := r.prompter.Input(ctx, PromptMessage, suggested.Path)
	if errors.Is(err, prompt.ErrCancelled) {
		return Location{}, ErrResolutionCancelled
	}
	if err != nil {
		return Location{}, fmt.Errorf("could not confirm the installation directory: %w", err)
	}

	answer = strings.TrimSpace(answer)
	switch answer {
	case "":
		return Location{}, ErrResolutionCancelled
	case suggested.Path:
		r.log.V(1).Info("installation directory confirmed", "Path", answer, "Source", suggested.Source.String())
		return suggested, nil
	default:
		r.log.V(1).Info("installation directory overridden by the user", "Path", answer, "Suggested", suggested.Path)
		return Location{Path: answer, Source: SourceUserOverride}, nil
	}
}
