/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

// lockfile package provides advisory, cross-process locks backed by a file.
package lockfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/bf2py/bf2debug/pkg/osutil"
)

// Represents a file that can be locked and unlocked.
// Lockfile is NOT goroutine-safe.
type Lockfile struct {
	path   string
	file   *os.File
	locked bool
}

const (
	DefaultLockRetryInterval = 20 * time.Millisecond

	// Suffix of the lock file that guards another file.
	Suffix = ".lock"
)

var (
	ErrNeedAbsPath = errors.New("lockfiles must be created using absolute path")
)

// Creates a new Lockfile instance for given path. The actual file is not created or locked yet.
// The path must be an absolute path.
func NewLockfile(path string) (*Lockfile, error) {
	if len(path) == 0 || !filepath.IsAbs(path) {
		return nil, ErrNeedAbsPath
	}

	return &Lockfile{
		path: path,
	}, nil
}

func (l *Lockfile) Path() string {
	return l.path
}

func (l *Lockfile) Locked() bool {
	return l.locked
}

func (l *Lockfile) Close() error {
	unlockErr := l.Unlock()
	if l.file != nil {
		closeErr := l.file.Close()
		l.file = nil
		return errors.Join(unlockErr, closeErr)
	} else {
		return unlockErr
	}
}

// TryLock acquires the lock, polling until it becomes available or the context is done.
func (l *Lockfile) TryLock(ctx context.Context, retryInterval time.Duration) error {
	if l.locked {
		return nil
	}

	if retryInterval <= 0 {
		retryInterval = DefaultLockRetryInterval
	}
	policy := backoff.WithContext(backoff.NewConstantBackOff(retryInterval), ctx)

	return backoff.Retry(func() error {
		if l.file == nil {
			file, openErr := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, osutil.PermissionOnlyOwnerReadWrite)
			if openErr != nil {
				return backoff.Permanent(openErr)
			}
			l.file = file
		}

		lockErr := doLock(l.file)
		if lockErr == nil {
			l.locked = true
			return nil
		}
		if isAlreadyLockedError(lockErr) {
			// Expected error if the file is already locked
			return lockErr
		}
		return backoff.Permanent(lockErr)
	}, policy)
}

func (l *Lockfile) Unlock() error {
	if l.file == nil || !l.locked {
		return nil
	}

	// Clear the locked flag regardless of the result of unlocking.
	l.locked = false

	return doUnlock(l.file)
}

// WithLock runs fn while holding the lock that guards the file at the given path.
// The lock itself lives next to the guarded file and is named after it.
func WithLock(ctx context.Context, guarded string, fn func() error) error {
	absPath, absErr := filepath.Abs(guarded)
	if absErr != nil {
		return absErr
	}

	lf, err := NewLockfile(absPath + Suffix)
	if err != nil {
		return err
	}

	if lockErr := lf.TryLock(ctx, DefaultLockRetryInterval); lockErr != nil {
		_ = lf.Close()
		return fmt.Errorf("could not lock '%s': %w", guarded, lockErr)
	}

	fnErr := fn()
	return errors.Join(fnErr, lf.Close())
}
