// Copyright (c) Microsoft Corporation. All rights reserved.

package process

import (
	"errors"
	"fmt"
	"math"
	"time"

	ps "github.com/shirou/gopsutil/v4/process"
)

var (
	// Returned instead of ps.ErrorProcessNotRunning, which is an implementation detail of this package.
	ErrorProcessNotFound = errors.New("process does not exist")
)

// Gets the start time of the process, used to tell apart processes that reuse a PID.
func ProcessIdentityTime(pid Pid_t) time.Time {
	proc, err := findPsProcess(pid)
	if err != nil {
		return time.Time{}
	}

	return identityTime(proc)
}

// Returns true if the process with a given PID exists, and (if the identity time is set) is the same process instance.
func IsRunning(handle ProcessHandle) bool {
	proc, err := findPsProcess(handle.Pid)
	if err != nil {
		return false
	}

	if handle.IdentityTime.IsZero() {
		return true
	}
	return identityTime(proc).Equal(handle.IdentityTime)
}

func findPsProcess(pid Pid_t) (*ps.Process, error) {
	osPid, err := PidT_ToUint32(pid)
	if err != nil {
		return nil, err
	}

	proc, procErr := ps.NewProcess(int32(osPid))
	if procErr != nil {
		if errors.Is(procErr, ps.ErrorProcessNotRunning) {
			return nil, fmt.Errorf("process with pid %d does not exist: %w", pid, ErrorProcessNotFound)
		}
		return nil, procErr
	}

	return proc, nil
}

// Any uint32 is a valid PID, and Pid_t is wide enough to hold it.
func Uint32_ToPidT(val uint32) Pid_t {
	return Pid_t(val)
}

func Int64ToPidT(val int64) (Pid_t, error) {
	return checkedPid[int64, Pid_t](val)
}

func PidT_ToUint32(val Pid_t) (uint32, error) {
	return checkedPid[Pid_t, uint32](val)
}

// PIDs are positive and fit in 32 bits on every supported platform.
func checkedPid[From ~int64, To ~int64 | ~uint32](val From) (To, error) {
	if val < 0 || int64(val) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d is out of range of valid process ID values", val)
	}
	return To(val), nil
}
