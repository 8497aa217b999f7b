/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package prompt

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptDefault(t *testing.T) {
	t.Parallel()

	val, err := AcceptDefault{}.Input(context.Background(), "dir", "/home/bf2server")
	require.NoError(t, err)
	assert.Equal(t, "/home/bf2server", val)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = AcceptDefault{}.Input(ctx, "dir", "/home/bf2server")
	require.ErrorIs(t, err, context.Canceled)
}

func TestSurveyPrompterWritesToStderr(t *testing.T) {
	t.Parallel()

	var options survey.AskOptions
	for _, opt := range NewSurveyPrompter().opts {
		require.NoError(t, opt(&options))
	}
	assert.Same(t, os.Stdin, options.Stdio.In)
	assert.Same(t, os.Stderr, options.Stdio.Out)
	assert.Same(t, os.Stderr, options.Stdio.Err)
}

func TestSurveyPrompterOptionsOverrideDefaults(t *testing.T) {
	t.Parallel()

	in, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer in.Close()

	var options survey.AskOptions
	for _, opt := range NewSurveyPrompter(survey.WithStdio(in, os.Stdout, os.Stdout)).opts {
		require.NoError(t, opt(&options))
	}
	assert.Same(t, in, options.Stdio.In)
	assert.Same(t, os.Stdout, options.Stdio.Out)
	assert.Equal(t, terminal.Stdio{In: in, Out: os.Stdout, Err: os.Stdout}, options.Stdio)
}

func TestNewDefaultAssumingDefault(t *testing.T) {
	t.Parallel()

	p := NewDefault(true)
	assert.IsType(t, AcceptDefault{}, p)
}

func TestMockPrompter(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	mp := NewMockPrompter(Answer("first"), Fail(boom))

	val, err := mp.Input(context.Background(), "one", "d1")
	require.NoError(t, err)
	assert.Equal(t, "first", val)

	_, err = mp.Input(context.Background(), "two", "d2")
	require.ErrorIs(t, err, boom)

	val, err = mp.Input(context.Background(), "three", "d3")
	require.NoError(t, err)
	assert.Equal(t, "d3", val, "exhausted script falls back to the default")

	calls := mp.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, MockCall{Message: "two", Default: "d2"}, calls[1])
}

func TestPrompterFunc(t *testing.T) {
	t.Parallel()

	var p Prompter = PrompterFunc(func(_ context.Context, message string, def string) (string, error) {
		return message + ":" + def, nil
	})
	val, err := p.Input(context.Background(), "m", "d")
	require.NoError(t, err)
	assert.Equal(t, "m:d", val)
}
