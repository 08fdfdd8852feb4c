// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package level

import (
	"fmt"
	"strings"
)

// FieldScope specifies how long declared fields exempt a returned postfix expression.
type FieldScope uint8

const (
	// FieldScopeFile keeps fields visible until the end of the file, also in unrelated classes
	// declared later.
	FieldScopeFile FieldScope = iota

	// FieldScopeClass limits fields to the declaring class and the classes nested in it.
	FieldScopeClass
)

// String returns the textual representation of the field scope.
func (o FieldScope) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("FieldScope(%d)", o)
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (o FieldScope) MarshalText() ([]byte, error) {
	switch o {
	case FieldScopeClass:
		return []byte("class"), nil

	case FieldScopeFile:
		return []byte("file"), nil

	default:
		return nil, fmt.Errorf("unknown field scope %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *FieldScope) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "file":
		*o = FieldScopeFile

	case "class":
		*o = FieldScopeClass

	default:
		return fmt.Errorf("unknown field scope %q", string(text))
	}

	return nil
}
