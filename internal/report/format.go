// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format selects the output sink.
type Format uint8

const (
	// FormatText writes one line per diagnostic.
	FormatText Format = iota

	// FormatJSON writes a JSON array of diagnostics.
	FormatJSON

	// FormatLSP writes one LSP publishDiagnostics parameter object per file.
	FormatLSP
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown format")

// String returns the flag value of the format.
func (f Format) String() string {
	text, err := f.MarshalText()
	if err != nil {
		return fmt.Sprintf("Format(%d)", f)
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case FormatText:
		return []byte("text"), nil

	case FormatJSON:
		return []byte("json"), nil

	case FormatLSP:
		return []byte("lsp"), nil

	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownFormat, f)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "text":
		*f = FormatText

	case "json":
		*f = FormatJSON

	case "lsp":
		*f = FormatLSP

	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(text))
	}

	return nil
}

// Write renders all reports in the given format.
func Write(w io.Writer, format Format, reports []Report) error {
	switch format {
	case FormatText:
		return writeText(w, reports)

	case FormatJSON:
		return writeJSON(w, reports)

	case FormatLSP:
		return writeLSP(w, reports)

	default:
		return fmt.Errorf("%w %d", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, reports []Report) error {
	for _, r := range reports {
		for _, d := range r.Diagnostics {
			if _, err := fmt.Fprintf(w, "%s: %s (%s)\n", r.Position(d).Start, d.Message, d.RuleID); err != nil {
				return err
			}
		}
	}

	return nil
}
