//go:build !linux

// Copyright (c) Microsoft Corporation. All rights reserved.

package process

import (
	"time"

	ps "github.com/shirou/gopsutil/v4/process"
)

func identityTime(proc *ps.Process) time.Time {
	created, err := proc.CreateTime()
	if err != nil || created <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(created)
}
