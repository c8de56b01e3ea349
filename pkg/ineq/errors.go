// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ineq

import "errors"

// ErrInvalidBounds indicates an attempt to construct an inequality whose
// bounds do not satisfy 0 <= lo <= hi <= |cells|, or one over an empty cell
// set.  Within a run this means either the puzzle is inconsistent or the
// engine itself is broken.
var ErrInvalidBounds = errors.New("invalid bounds")

// ErrMissing indicates a strict lookup or removal of an inequality which is
// not present in the index.  This only arises when an internal invariant has
// been violated.
var ErrMissing = errors.New("missing inequality")

// ErrUnsatisfiable indicates that tightening the bounds of an inequality
// produced an empty range (lo > hi).  No assignment of mines can satisfy the
// system, hence the puzzle is inconsistent.
var ErrUnsatisfiable = errors.New("unsatisfiable system")
