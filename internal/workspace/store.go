/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/bf2py/bf2debug/internal/lockfile"
	"github.com/bf2py/bf2debug/pkg/osutil"
)

const (
	foldersKey = "folders"

	// How long Save waits for another process to finish writing the workspace file.
	DefaultLockTimeout = 5 * time.Second
)

// Store holds the ordered workspace folder list owned by the editor.
type Store interface {
	Load() ([]Folder, error)
	Save(folders []Folder) error

	// Update loads the folder list, passes it to the function and saves the result,
	// all while holding the store's lock. Nothing is saved if the function reports no change.
	Update(fn UpdateFunc) error
}

// UpdateFunc computes a new folder list from the current one.
// The returned bool reports whether the list changed and needs to be saved.
type UpdateFunc func(current []Folder) ([]Folder, bool, error)

// FileStore keeps the folder list in the "folders" array of a .code-workspace file.
// Other top-level settings of the file are preserved. Writers in different processes
// are serialized through a lock file placed next to the workspace file.
type FileStore struct {
	path        string
	lockTimeout time.Duration
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, lockTimeout: DefaultLockTimeout}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() ([]Folder, error) {
	content, err := s.read()
	if err != nil {
		return nil, err
	}

	return s.parse(content)
}

func (s *FileStore) parse(content []byte) ([]Folder, error) {
	raw := gjson.GetBytes(content, foldersKey)
	if !raw.Exists() {
		return nil, nil
	}
	if !raw.IsArray() {
		return nil, fmt.Errorf("workspace file '%s' has an invalid folder list: expected an array", s.path)
	}

	var folders []Folder
	if err := json.Unmarshal([]byte(raw.Raw), &folders); err != nil {
		return nil, fmt.Errorf("workspace file '%s' has an invalid folder list: %w", s.path, err)
	}
	return folders, nil
}

func (s *FileStore) Save(folders []Folder) error {
	return s.modify(func(_ []byte) ([]Folder, bool, error) {
		return folders, true, nil
	})
}

// Update runs the whole read-modify-write cycle under the lock file, so that
// adapters of concurrent sessions cannot overwrite each other's folder edits.
func (s *FileStore) Update(fn UpdateFunc) error {
	return s.modify(func(content []byte) ([]Folder, bool, error) {
		current, err := s.parse(content)
		if err != nil {
			return nil, false, err
		}
		return fn(current)
	})
}

func (s *FileStore) modify(fn func(content []byte) ([]Folder, bool, error)) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	return lockfile.WithLock(ctx, s.path, func() error {
		content, err := s.read()
		if err != nil {
			return err
		}

		updated, changed, err := fn(content)
		if err != nil || !changed {
			return err
		}
		return s.write(content, updated)
	})
}

// Only the folder list is replaced; the rest of the document keeps its bytes, key order included.
func (s *FileStore) write(content []byte, folders []Folder) error {
	var err error
	if folders == nil {
		folders = []Folder{}
	}

	if len(content) == 0 {
		content, err = json.MarshalIndent(map[string][]Folder{foldersKey: folders}, "", "\t")
		if err != nil {
			return err
		}
		content = append(content, osutil.LineSep()...)
	} else {
		raw, marshalErr := json.MarshalIndent(folders, "\t", "\t")
		if marshalErr != nil {
			return marshalErr
		}
		if content, err = sjson.SetRawBytes(content, foldersKey, raw); err != nil {
			return fmt.Errorf("could not update the folder list of workspace file '%s': %w", s.path, err)
		}
	}

	// Write to a temporary file first so the editor never observes a half-written workspace.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not write workspace file '%s': %w", s.path, err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(content)
	closeErr := tmp.Close()
	if err = errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("could not write workspace file '%s': %w", s.path, err)
	}
	if err = os.Chmod(tmpName, osutil.PermissionOwnerReadWriteOthersRead); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("could not replace workspace file '%s': %w", s.path, err)
	}
	return nil
}

// Returns the file content, or nothing if the file does not exist or is blank.
// Content that is not a JSON object is rejected so that Save never clobbers it.
func (s *FileStore) read() ([]byte, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read workspace file '%s': %w", s.path, err)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(content) || !gjson.ParseBytes(content).IsObject() {
		return nil, fmt.Errorf("workspace file '%s' is not a valid JSON object", s.path)
	}
	return content, nil
}

// MemoryStore keeps the folder list in memory.
type MemoryStore struct {
	mu      sync.Mutex
	folders []Folder
}

func NewMemoryStore(folders ...Folder) *MemoryStore {
	return &MemoryStore{folders: folders}
}

func (ms *MemoryStore) Load() ([]Folder, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return slices.Clone(ms.folders), nil
}

func (ms *MemoryStore) Save(folders []Folder) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.folders = slices.Clone(folders)
	return nil
}

func (ms *MemoryStore) Update(fn UpdateFunc) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	updated, changed, err := fn(slices.Clone(ms.folders))
	if err != nil || !changed {
		return err
	}
	ms.folders = slices.Clone(updated)
	return nil
}

var _ Store = (*FileStore)(nil)
var _ Store = (*MemoryStore)(nil)
