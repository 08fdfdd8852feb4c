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

package settings_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/segmentio/encoding/json"

	uselesspostfix "fillmore-labs.com/uselesspostfix/analyzer"
	"fillmore-labs.com/uselesspostfix/analyzer/level"
	. "fillmore-labs.com/uselesspostfix/internal/settings"
)

const allSettings = `{
	"active": true,
	"field-scope": "file",
	"generated": true,
	"suppress": false
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, 3},
		{"none", `{}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var s Settings
			if err := json.Unmarshal([]byte(tc.settings), &s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if !s.Enabled() {
				t.Error("Rule disabled")
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), uselesspostfix.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		enabled    bool
		fieldScope *level.FieldScope
		options    int
	}{
		{"yaml", "testdata/detekt.yml", true, ptr(level.FieldScopeFile), 3},
		{"toml", "testdata/detekt.toml", false, ptr(level.FieldScopeClass), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Load(tt.path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if got := s.Enabled(); got != tt.enabled {
				t.Errorf("Enabled() = %t, want %t", got, tt.enabled)
			}

			if !reflect.DeepEqual(s.FieldScope, tt.fieldScope) {
				t.Errorf("FieldScope = %v, want %v", s.FieldScope, tt.fieldScope)
			}

			if got := s.Options(); len(got) != tt.options {
				t.Errorf("Got %d options: %s, want %d", len(got), uselesspostfix.Options(got).LogValue(), tt.options)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    Settings
		wantErr bool
	}{
		{name: "empty", data: "", want: Settings{}},
		{name: "other_rules", data: "style:\n  MagicNumber:\n    active: false\n", want: Settings{}},
		{name: "empty_section", data: "bugs:\n  UselessPostfixExpression:\n", want: Settings{}},
		{name: "disabled", data: "bugs:\n  UselessPostfixExpression:\n    active: false\n", want: Settings{Active: ptr(false)}},
		{name: "ruleset_active_string", data: "bugs:\n  active: maybe\n", wantErr: true},
		{name: "unknown_key", data: "bugs:\n  UselessPostfixExpression:\n    threshold: 3\n", wantErr: true},
		{name: "unknown_scope", data: "bugs:\n  UselessPostfixExpression:\n    field-scope: package\n", wantErr: true},
		{name: "scalar_section", data: "bugs: true\n", wantErr: true},
		{name: "syntax", data: "bugs: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseYAML([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseYAML() error = %v, wantErr %t", err, tt.wantErr)
			}

			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseYAML() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRuleSetActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want bool
	}{
		{"ruleset_disabled", "bugs:\n  active: false\n  UselessPostfixExpression:\n    field-scope: file\n", false},
		{"ruleset_disabled_without_rule", "bugs:\n  active: false\n", false},
		{"ruleset_enabled", "bugs:\n  active: true\n  UselessPostfixExpression:\n    active: true\n", true},
		{"rule_disabled", "bugs:\n  active: true\n  UselessPostfixExpression:\n    active: false\n", false},
		{"defaults", "bugs:\n  UselessPostfixExpression:\n    suppress: true\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := ParseYAML([]byte(tt.data))
			if err != nil {
				t.Fatalf("ParseYAML failed: %v", err)
			}

			if got := s.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestRuleSetActiveTOML(t *testing.T) {
	t.Parallel()

	s, err := ParseTOML([]byte("[bugs]\nactive = false\n\n[bugs.UselessPostfixExpression]\nsuppress = true\n"))
	if err != nil {
		t.Fatalf("ParseTOML failed: %v", err)
	}

	if s.Enabled() {
		t.Error("Rule enabled in disabled rule set")
	}
}

func TestInvalidValue(t *testing.T) {
	t.Parallel()

	_, err := ParseTOML([]byte("[bugs]\nactive = 1\n"))
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("ParseTOML() error = %v, want %v", err, ErrInvalidValue)
	}
}

func TestInvalidSection(t *testing.T) {
	t.Parallel()

	_, err := ParseTOML([]byte("bugs = 1\n"))
	if !errors.Is(err, ErrInvalidSection) {
		t.Errorf("ParseTOML() error = %v, want %v", err, ErrInvalidSection)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want %v", err, os.ErrNotExist)
	}
}

func ptr[T any](v T) *T { return &v }
