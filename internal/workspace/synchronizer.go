/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package workspace

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
)

// Synchronizer applies folder synchronization events to a Store.
// Events are processed one at a time; the store keeps the load-modify-save cycle of
// each event atomic with respect to other processes.
type Synchronizer struct {
	store Store
	lock  sync.Mutex
	log   logr.Logger
}

func NewSynchronizer(store Store, log logr.Logger) *Synchronizer {
	return &Synchronizer{
		store: store,
		log:   log.WithName("workspace-sync"),
	}
}

// HandleEvent parses a modpath event and synchronizes the folder list with it.
func (s *Synchronizer) HandleEvent(evt ModPathEvent) (Patch, error) {
	base, module, err := ParseModPathEvent(evt)
	if err != nil {
		return Patch{}, err
	}
	return s.Sync(base, module)
}

// Sync makes the stored folder list contain the folders for baseDir and moduleName.
// The store is only written when the folder list changes.
func (s *Synchronizer) Sync(baseDir string, moduleName string) (Patch, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var patch Patch
	err := s.store.Update(func(current []Folder) ([]Folder, bool, error) {
		patch = Sync(baseDir, moduleName, current)
		if patch.IsEmpty() {
			return current, false, nil
		}
		return Apply(current, patch), true, nil
	})
	if err != nil {
		return Patch{}, fmt.Errorf("could not update workspace folders: %w", err)
	}

	if patch.IsEmpty() {
		s.log.V(1).Info("workspace folders already synchronized", "Base", baseDir, "Module", moduleName)
		return patch, nil
	}

	s.log.Info("workspace folders updated",
		"Base", baseDir,
		"Module", moduleName,
		"Removed", len(patch.Remove),
		"Inserted", len(patch.Insert),
	)
	return patch, nil
}
