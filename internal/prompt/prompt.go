/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

// Package prompt provides the synchronous user interaction used while bootstrapping a debug session.
package prompt

import (
	"context"
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrCancelled is returned when the user dismisses a prompt without answering.
var ErrCancelled = errors.New("prompt cancelled by the user")

// Prompter asks the user for a single line of text.
type Prompter interface {
	// Input shows message with def as an editable default value and blocks until the user answers.
	// An empty answer is returned as an empty string. The terminal prompt substitutes def for an
	// empty answer, so there an empty result only comes back when def is empty, and the user
	// cancels by interrupting the prompt, which returns ErrCancelled.
	Input(ctx context.Context, message string, def string) (string, error)
}

// PrompterFunc makes it easy to supply a function as a Prompter.
type PrompterFunc func(ctx context.Context, message string, def string) (string, error)

func (f PrompterFunc) Input(ctx context.Context, message string, def string) (string, error) {
	return f(ctx, message, def)
}

// IsInteractive returns true if both stdin and stderr are attached to a terminal,
// which is what an interactive prompt needs.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// NewDefault returns the survey based prompter if the process is attached to a terminal,
// and a prompter that accepts the suggested value otherwise.
func NewDefault(assumeDefault bool) Prompter {
	if assumeDefault || !IsInteractive() {
		return AcceptDefault{}
	}
	return NewSurveyPrompter()
}

// AcceptDefault answers every prompt with its default value.
// It is used when the session runs without a terminal, e.g. when started by an editor.
type AcceptDefault struct{}

func (AcceptDefault) Input(ctx context.Context, _ string, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return def, nil
}

var _ Prompter = AcceptDefault{}
var _ Prompter = PrompterFunc(nil)
