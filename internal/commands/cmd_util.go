/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See LICENSE in the project root for license information.
 *--------------------------------------------------------------------------------------------*/

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bf2py/bf2debug/pkg/logger"
	"github.com/bf2py/bf2debug/pkg/osutil"
)

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

func (f *OutputFormat) String() string {
	return string(*f)
}

func (f *OutputFormat) Set(value string) error {
	switch OutputFormat(value) {
	case OutputFormatText, OutputFormatJSON:
		*f = OutputFormat(value)
		return nil
	default:
		return fmt.Errorf("output format must be '%s' or '%s'", OutputFormatText, OutputFormatJSON)
	}
}

func (f *OutputFormat) Type() string {
	return "format"
}

var _ pflag.Value = (*OutputFormat)(nil)

// AddOutputFlag registers the -o/--output flag on the flag set.
func AddOutputFlag(fs *pflag.FlagSet, format *OutputFormat) {
	if *format == "" {
		*format = OutputFormatText
	}
	fs.VarP(format, "output", "o", "Output format: 'text' or 'json'.")
}

// WriteOutput writes the result in the requested format. Text output uses the text argument.
func WriteOutput(w io.Writer, format OutputFormat, text string, value any) error {
	var content []byte
	if format == OutputFormatJSON {
		var err error
		if content, err = json.Marshal(value); err != nil {
			return fmt.Errorf("could not serialize the result: %w", err)
		}
	} else {
		content = []byte(text)
	}

	_, err := w.Write(WithNewline(content))
	return err
}

func WithNewline(b []byte) []byte {
	return append(b, osutil.LineSep()...)
}

// ErrorExit reports the error on stderr and in the log, flushes the log and exits with the given code.
func ErrorExit(log *logger.Logger, err error, code int) {
	log.Error(err, "command failed")
	os.Stderr.WriteString(err.Error() + string(osutil.LineSep()))
	log.Flush()
	os.Exit(code)
}
