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

// Package settings reads rule configuration files.
//
// The rule section sits at bugs.UselessPostfixExpression, as in detekt configuration files:
//
//	bugs:
//	  UselessPostfixExpression:
//	    active: true
//	    field-scope: class
//	    generated: false
//	    suppress: true
//
// Files with a .toml extension are read as TOML, all others as YAML.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golangci/plugin-module-register/register"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	uselesspostfix "fillmore-labs.com/uselesspostfix/analyzer"
	"fillmore-labs.com/uselesspostfix/analyzer/level"
)

// Section names of the rule configuration.
const (
	RuleSet = "bugs"
	Rule    = "UselessPostfixExpression"
)

var (
	// ErrInvalidSection is returned when a configuration section is not a mapping.
	ErrInvalidSection = errors.New("invalid section")

	// ErrInvalidValue is returned when the active flag of the rule set is not a boolean.
	ErrInvalidValue = errors.New("invalid value")
)

// Settings represents the configuration options of the rule.
type Settings struct {
	// Active enables the rule.
	Active *bool `json:"active,omitzero"`
	// FieldScope sets how long declared fields exempt returned postfix expressions.
	FieldScope *level.FieldScope `json:"field-scope,omitzero"`
	// Generated enables checks of generated files.
	Generated *bool `json:"generated,omitzero"`
	// Suppress enables nolint comments and @Suppress annotations.
	Suppress *bool `json:"suppress,omitzero"`

	// ruleSetActive is the active flag of the enclosing rule set.
	ruleSetActive *bool
}

// Load reads the rule settings from a configuration file.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		s, err = ParseTOML(data)
	} else {
		s, err = ParseYAML(data)
	}

	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// ParseYAML decodes the rule settings from a YAML document.
func ParseYAML(data []byte) (Settings, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("parsing YAML: %w", err)
	}

	return decode(raw)
}

// ParseTOML decodes the rule settings from a TOML document.
func ParseTOML(data []byte) (Settings, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("parsing TOML: %w", err)
	}

	return decode(raw)
}

func decode(raw map[string]any) (Settings, error) {
	ruleSet, err := section(raw, RuleSet)
	if err != nil {
		return Settings{}, err
	}

	ruleSetActive, err := active(ruleSet)
	if err != nil {
		return Settings{}, err
	}

	rule, err := section(ruleSet, Rule)
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if rule != nil {
		if s, err = register.DecodeSettings[Settings](rule); err != nil {
			return Settings{}, err
		}
	}

	s.ruleSetActive = ruleSetActive

	return s, nil
}

// active returns the active flag of a rule set. A missing flag is nil.
func active(ruleSet map[string]any) (*bool, error) {
	value, ok := ruleSet["active"]
	if !ok || value == nil {
		return nil, nil
	}

	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("%s.active is a %T: %w", RuleSet, value, ErrInvalidValue)
	}

	return &b, nil
}

// section returns the named sub-mapping. A missing section is nil.
func section(raw map[string]any, name string) (map[string]any, error) {
	value, ok := raw[name]
	if !ok || value == nil {
		return nil, nil
	}

	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s is a %T: %w", name, value, ErrInvalidSection)
	}

	return m, nil
}

// Enabled reports whether the rule is active. Rules are active unless they or their
// rule set are disabled explicitly.
func (s Settings) Enabled() bool {
	return isTrue(s.ruleSetActive) && isTrue(s.Active)
}

func isTrue(b *bool) bool { return b == nil || *b }

// Options converts [Settings] into a list of [uselesspostfix.Option] for the rule.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []uselesspostfix.Option {
	var opts []uselesspostfix.Option

	opts = appendOption(opts, s.FieldScope, uselesspostfix.WithFieldScope)
	opts = appendOption(opts, s.Generated, uselesspostfix.WithGenerated)
	opts = appendOption(opts, s.Suppress, uselesspostfix.WithSuppressions)

	return opts
}

// appendOption appends a non-nil setting to a [uselesspostfix.Option] list.
func appendOption[T any](opts []uselesspostfix.Option, value *T, constructor func(T) uselesspostfix.Option) []uselesspostfix.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
