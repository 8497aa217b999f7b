//go:build windows

/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package bf2paths

import (
	"golang.org/x/sys/windows/registry"
)

var registryRoots = map[string]registry.Key{
	"HKLM":               registry.LOCAL_MACHINE,
	"HKEY_LOCAL_MACHINE": registry.LOCAL_MACHINE,
	"HKCU":               registry.CURRENT_USER,
	"HKEY_CURRENT_USER":  registry.CURRENT_USER,
	"HKCR":               registry.CLASSES_ROOT,
	"HKEY_CLASSES_ROOT":  registry.CLASSES_ROOT,
	"HKU":                registry.USERS,
	"HKEY_USERS":         registry.USERS,
}

// registryProber reads string values from the 32-bit registry view, which is where the game installers write.
type registryProber struct{}

func NewPlatformProber() Prober {
	return registryProber{}
}

func (registryProber) Probe(key, valueName string) (string, bool) {
	rootName, path, err := SplitRegistryKey(key)
	if err != nil {
		return "", false
	}

	root, found := registryRoots[rootName]
	if !found {
		return "", false
	}

	k, err := registry.OpenKey(root, path, registry.QUERY_VALUE|registry.WOW64_32KEY)
	if err != nil {
		return "", false
	}
	defer k.Close()

	val, _, err := k.GetStringValue(valueName)
	if err != nil || val == "" {
		return "", false
	}

	return val, true
}
