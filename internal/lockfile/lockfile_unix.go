//go:build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.

package lockfile

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// flock(2) locks belong to the open file description and are dropped when it is closed
// or the owning process exits.
func doLock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
}

func doUnlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}

func isAlreadyLockedError(err error) bool {
	return errors.Is(err, unix.EWOULDBLOCK)
}
