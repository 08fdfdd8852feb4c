// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the uselesspostfix rule.
//
// # Overview
//
// uselesspostfix detects postfix increments and decrements whose value is thrown away,
// because the old value is either returned or assigned back to the incremented variable.
//
// # Example
//
//	fun next(): Int {
//	    var n = 0
//	    n = n++     // n is still 0
//	    return n++  // returns 0, the increment is lost
//	}
//
// Returning the postfix of a field directly is not reported:
//
//	class Counter {
//	    var count = 0
//	    fun next() = return count++
//	}
//
// # Configuration
//
//   - field-scope: "file" (default) keeps field names of all classes seen so far in the file,
//     "class" exempts fields of enclosing classes only
//   - generated: also check files with a "// Code generated ... DO NOT EDIT." header
//   - suppress: honor //nolint:uselesspostfix comments (default true)
package analyzer
