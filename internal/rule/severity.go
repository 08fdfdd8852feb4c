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

package rule

import (
	"fmt"
	"strings"
)

// Severity classifies the impact of an issue.
type Severity uint8

const (
	// CodeSmell marks code that is hard to read or maintain.
	CodeSmell Severity = iota

	// Style marks violations of coding conventions.
	Style

	// Warning marks code that probably does not do what was intended.
	Warning

	// Defect marks code that is very likely wrong.
	Defect

	// Minor marks issues with small impact.
	Minor

	// Maintainability marks code that is expensive to change.
	Maintainability

	// Security marks potential vulnerabilities.
	Security

	// Performance marks inefficient code.
	Performance
)

var severityNames = [...]string{
	CodeSmell:       "CodeSmell",
	Style:           "Style",
	Warning:         "Warning",
	Defect:          "Defect",
	Minor:           "Minor",
	Maintainability: "Maintainability",
	Security:        "Security",
	Performance:     "Performance",
}

// String returns the name of the severity.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}

	return fmt.Sprintf("Severity(%d)", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	if int(s) >= len(severityNames) {
		return nil, fmt.Errorf("unknown severity %d", s)
	}

	return []byte(severityNames[s]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	for i, name := range severityNames {
		if strings.EqualFold(name, string(text)) {
			*s = Severity(i)

			return nil
		}
	}

	return fmt.Errorf("unknown severity %q", string(text))
}
