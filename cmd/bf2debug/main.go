/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bf2py/bf2debug/internal/bf2debug/commands"
	cmdutil "github.com/bf2py/bf2debug/internal/commands"
	"github.com/bf2py/bf2debug/pkg/logger"
	"github.com/bf2py/bf2debug/pkg/osutil"
	"github.com/bf2py/bf2debug/pkg/resiliency"
)

const (
	errCommandError = 1
	errSetup        = 2
	errPanic        = 3
)

func main() {
	// Standard output may carry protocol messages, so logs always go to stderr.
	log := logger.New("bf2debug")
	defer func() {
		panicErr := resiliency.MakePanicError(recover(), log.Logger)
		if panicErr != nil {
			os.Stderr.WriteString(panicErr.Error() + string(osutil.LineSep()))
			log.Flush()
			os.Exit(errPanic)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, err := commands.NewRootCmd(log)
	if err != nil {
		cmdutil.ErrorExit(log, err, errSetup)
	}

	err = root.ExecuteContext(ctx)
	if err != nil {
		stop()
		cmdutil.ErrorExit(log, err, errCommandError)
	} else {
		log.Flush()
	}
}
