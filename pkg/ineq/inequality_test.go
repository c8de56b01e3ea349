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

import (
	"errors"
	"sort"
	"testing"
)

func Test_Ineq_01(t *testing.T) {
	// Valid bounds
	check_NewIneq(t, NewCellSet(1, 2, 3), 0, 3)
	check_NewIneq(t, NewCellSet(1, 2, 3), 1, 1)
	check_NewIneq(t, NewCellSet(1), 0, 0)
	check_NewIneq(t, NewCellSet(1), 1, 1)
}

func Test_Ineq_02(t *testing.T) {
	// Invalid bounds
	check_InvalidIneq(t, NewCellSet(1, 2), 2, 1)
	check_InvalidIneq(t, NewCellSet(1, 2), 0, 3)
	check_InvalidIneq(t, NewCellSet(1, 2), 3, 3)
	check_InvalidIneq(t, NewCellSet(), 0, 0)
}

func Test_Ineq_03(t *testing.T) {
	// Re-validation on bounds mutation
	ith := check_NewIneq(t, NewCellSet(1, 2), 1, 2)
	//
	if err := ith.SetBounds(0, 3); err == nil {
		t.Error("expected invalid bounds")
	}
	//
	if err := ith.SetBounds(2, 2); err != nil {
		t.Errorf("unexpected error %s", err)
	}
}

func Test_Ineq_04(t *testing.T) {
	// Triviality
	if !check_NewIneq(t, NewCellSet(1, 2), 2, 2).Trivial() {
		t.Error("full inequality is trivial")
	}
	//
	if !check_NewIneq(t, NewCellSet(1, 2), 0, 0).Trivial() {
		t.Error("empty inequality is trivial")
	}
	//
	if check_NewIneq(t, NewCellSet(1, 2), 1, 2).Trivial() {
		t.Error("partial inequality is not trivial")
	}
}

func Test_Ineq_Cross_01(t *testing.T) {
	// Identical cells yield nothing.
	a := check_NewIneq(t, NewCellSet(1, 2), 1, 2)
	b := check_NewIneq(t, NewCellSet(1, 2), 0, 1)
	//
	derived, err := a.Cross(b)
	//
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	} else if len(derived) != 0 {
		t.Errorf("expected nothing, got %v", derived)
	}
}

func Test_Ineq_Cross_02(t *testing.T) {
	// Disjoint cells yield the operands unchanged.
	a := check_NewIneq(t, NewCellSet(1, 2), 1, 2)
	b := check_NewIneq(t, NewCellSet(3, 4), 0, 1)
	//
	derived, err := a.Cross(b)
	//
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	} else if len(derived) != 2 || derived[0] != a || derived[1] != b {
		t.Errorf("expected operands back, got %v", derived)
	}
}

func Test_Ineq_Cross_03(t *testing.T) {
	// (1,{a,b}) x (1,{b,c}) => {b}(0,1), {a}(0,1), {c}(0,1)
	a := check_NewIneq(t, NewCellSet(1, 2), 1, 1)
	b := check_NewIneq(t, NewCellSet(2, 3), 1, 1)
	//
	derived, err := a.Cross(b)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	//
	check_Derived(t, derived, map[string][2]uint{
		NewCellSet(2).Key(): {0, 1},
		NewCellSet(1).Key(): {0, 1},
		NewCellSet(3).Key(): {0, 1},
	})
}

func Test_Ineq_Cross_04(t *testing.T) {
	// (2,{a,b,c,d}) x (0,{a,b}) => {a,b}(0,0), {c,d}(2,2)
	a := check_NewIneq(t, NewCellSet(1, 2, 3, 4), 2, 2)
	b := check_NewIneq(t, NewCellSet(1, 2), 0, 0)
	//
	derived, err := a.Cross(b)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	//
	check_Derived(t, derived, map[string][2]uint{
		NewCellSet(1, 2).Key(): {0, 0},
		NewCellSet(3, 4).Key(): {2, 2},
	})
}

func Test_Ineq_Cross_05(t *testing.T) {
	// Symmetry: A x B and B x A derive the same inequalities.
	a := check_NewIneq(t, NewCellSet(1, 2, 3), 2, 3)
	b := check_NewIneq(t, NewCellSet(2, 3, 4, 5), 1, 2)
	//
	ab, err1 := a.Cross(b)
	ba, err2 := b.Cross(a)
	//
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors %v / %v", err1, err2)
	}
	//
	if len(ab) != len(ba) {
		t.Fatalf("asymmetric cross: %v vs %v", ab, ba)
	}
	//
	sortIneqs(ab)
	sortIneqs(ba)
	//
	for i := range ab {
		if !ab[i].Cells().Equals(ba[i].Cells()) || ab[i].Lo() != ba[i].Lo() || ab[i].Hi() != ba[i].Hi() {
			t.Errorf("asymmetric cross: %s vs %s", ab[i], ba[i])
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_NewIneq(t *testing.T, cells CellSet, lo uint, hi uint) *Inequality {
	t.Helper()
	//
	ith, err := New(cells, lo, hi)
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	//
	return ith
}

func check_InvalidIneq(t *testing.T, cells CellSet, lo uint, hi uint) {
	t.Helper()
	//
	if _, err := New(cells, lo, hi); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("expected invalid bounds for (%s, %d, %d), got %v", cells, lo, hi, err)
	}
}

func check_Derived(t *testing.T, derived []*Inequality, expected map[string][2]uint) {
	t.Helper()
	//
	if len(derived) != len(expected) {
		t.Fatalf("expected %d inequalities, got %v", len(expected), derived)
	}
	//
	for _, ith := range derived {
		bounds, ok := expected[ith.Cells().Key()]
		//
		if !ok {
			t.Errorf("unexpected inequality %s", ith)
		} else if ith.Lo() != bounds[0] || ith.Hi() != bounds[1] {
			t.Errorf("expected bounds (%d, %d) for %s", bounds[0], bounds[1], ith)
		}
	}
}

func sortIneqs(ineqs []*Inequality) {
	sort.Slice(ineqs, func(i, j int) bool {
		return ineqs[i].Cells().Key() < ineqs[j].Cells().Key()
	})
}
