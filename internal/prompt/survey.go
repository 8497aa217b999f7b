/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package prompt

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyPrompter implements Prompter using the survey library.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a new survey-based prompter. Prompts are rendered on stderr,
// so that stdout stays reserved for command output. Passed options are applied after the default ones.
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{
		opts: append([]survey.AskOpt{survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)}, opts...),
	}
}

// Input pre-fills the answer with def, so an empty answer yields def.
// The user can only cancel the prompt by interrupting it (Ctrl+C).

func (sp *SurveyPrompter) Input(ctx context.Context, message string, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var result string
	input := &survey.Input{
		Message: message,
		Default: def,
	}

	err := survey.AskOne(input, &result, sp.opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

var _ Prompter = (*SurveyPrompter)(nil)
