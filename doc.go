// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package linediff compares two versions of a document line by line and reports a minimal set of
// added and removed lines.
//
// The main functions are [Edits], which returns one edit for every line of both inputs, [Lines],
// which renders those edits with a "+" or "-" marker per changed line, and [Hunks], which groups
// changes into contextual blocks.
//
// The diff is computed from the longest common subsequence of the two inputs. Lines are compared
// for exact equality; nothing is trimmed or normalized. When more than one minimal edit script
// exists, the result is chosen deterministically: while reconstructing the script from the end of
// both inputs, an addition is preferred over a removal. As a consequence, diffing y against x is
// not always the mirror image of diffing x against y.
//
// Performance: time and space complexity are O(NM) for inputs of length N and M. The package is
// meant for human authored documents of up to a few thousand lines.
//
// Note: For a diff of whole texts, please see [onepg.dev/linediff/textdiff].
package linediff
