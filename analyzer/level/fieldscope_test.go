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

package level_test

import (
	"testing"

	. "fillmore-labs.com/uselesspostfix/analyzer/level"
)

func TestFieldScope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		want    FieldScope
		wantErr bool
	}{
		{"file", FieldScopeFile, false},
		{"", FieldScopeFile, false},
		{"CLASS", FieldScopeClass, false},
		{"package", FieldScopeFile, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var got FieldScope

			err := got.UnmarshalText([]byte(tt.text))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v, want error %t", tt.text, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}

	if _, err := FieldScope(7).MarshalText(); err == nil {
		t.Error("MarshalText succeeded on unknown field scope")
	}

	if got, want := FieldScopeClass.String(), "class"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
