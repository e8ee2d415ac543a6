package field

import (
	"testing"
)

func row(f *PrimeField, values ...int64) []Element {
	r := make([]Element, len(values))
	for i, v := range values {
		r[i] = f.NewElement(v)
	}
	return r
}

func TestIsLinearlyIndependentIncremental_EmptyExisting(t *testing.T) {
	field := setupPrimeField(t, 101)
	var existingVectors [][]Element

	// Non-zero vector should be independent
	newREF, isIndependent := IsLinearlyIndependentIncremental(existingVectors, row(field, 3, 1))
	if !isIndependent {
		t.Errorf("Non-zero vector should be independent when no existing vectors")
	}
	if isIndependent && !IsRowEchelonForm(newREF) {
		t.Errorf("Returned matrix should be in REF form")
	}

	// Zero vector should not be independent
	newREF, isIndependent = IsLinearlyIndependentIncremental(existingVectors, row(field, 0, 0))
	if isIndependent {
		t.Errorf("Zero vector should not be independent")
	}
	if newREF != nil {
		t.Errorf("Should return nil matrix for dependent vector")
	}
}

// TestIsLinearlyIndependentIncremental_Independent tests adding independent vector
func TestIsLinearlyIndependentIncremental_Independent(t *testing.T) {
	field := setupPrimeField(t, 101)

	existingVectors := [][]Element{
		row(field, 1, 0, 0),
		row(field, 0, 1, 0),
	}

	newREF, isIndependent := IsLinearlyIndependentIncremental(existingVectors, row(field, 0, 0, 1))
	if !isIndependent {
		t.Fatalf("Should be independent: orthogonal to existing vectors")
	}
	if len(newREF) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(newREF))
	}
	if !IsRowEchelonForm(newREF) {
		t.Errorf("Returned matrix should be in REF form")
	}
}

// TestIsLinearlyIndependentIncremental_Dependent tests adding dependent vector
func TestIsLinearlyIndependentIncremental_Dependent(t *testing.T) {
	field := setupPrimeField(t, 101)

	existingVectors := [][]Element{
		row(field, 1, 0, 0),
		row(field, 0, 1, 0),
	}

	// newVector = 3 * v1 + 2 * v2
	newREF, isIndependent := IsLinearlyIndependentIncremental(existingVectors, row(field, 3, 2, 0))
	if isIndependent {
		t.Errorf("Should be dependent: linear combination of existing vectors")
	}
	if newREF != nil {
		t.Errorf("Should return nil matrix for dependent vector")
	}
}

// TestIsLinearlyIndependentIncremental_FullRank tests when we already have full rank
func TestIsLinearlyIndependentIncremental_FullRank(t *testing.T) {
	field := setupPrimeField(t, 101)

	existingVectors := [][]Element{
		row(field, 1, 0),
		row(field, 0, 1),
	}

	newREF, isIndependent := IsLinearlyIndependentIncremental(existingVectors, row(field, 5, 7))
	if isIndependent {
		t.Errorf("Should be dependent: already have full rank")
	}
	if newREF != nil {
		t.Errorf("Should return nil matrix for dependent vector")
	}
}

// TestIsLinearlyIndependentIncremental_KeepsOrder tests that a new pivot left of existing pivots is inserted first
func TestIsLinearlyIndependentIncremental_KeepsOrder(t *testing.T) {
	field := setupPrimeField(t, 7)

	existingVectors := [][]Element{
		row(field, 0, 1, 2),
	}
	before := row(field, 0, 1, 2)

	newREF, isIndependent := IsLinearlyIndependentIncremental(existingVectors, row(field, 4, 2, 1))
	if !isIndependent {
		t.Fatalf("Should be independent")
	}
	if !IsRowEchelonForm(newREF) {
		t.Errorf("Returned matrix should be in REF form")
	}
	if newREF[0][0].IsZero() {
		t.Errorf("New vector should be the first row, got %v", newREF)
	}
	for j := range before {
		if !existingVectors[0][j].Equal(before[j]) {
			t.Errorf("Existing vectors must not be modified")
		}
	}
}

// TestIsLinearlyIndependentIncremental_Sequence feeds a sequence of vectors over GF(3)
func TestIsLinearlyIndependentIncremental_Sequence(t *testing.T) {
	field := setupPrimeField(t, 3)

	vectors := [][]Element{
		row(field, 0, 1),
		row(field, 1, 1),
		row(field, 2, 2), // 2 * (1, 1)
	}
	want := []bool{true, true, false}

	var ref [][]Element
	for i, v := range vectors {
		next, ok := IsLinearlyIndependentIncremental(ref, v)
		if ok != want[i] {
			t.Fatalf("vector %d: independent = %v, want %v", i, ok, want[i])
		}
		if ok {
			ref = next
		}
	}
}

func TestIsRowEchelonForm(t *testing.T) {
	field := setupPrimeField(t, 101)

	tests := []struct {
		name   string
		matrix [][]Element
		want   bool
	}{
		{"empty", [][]Element{}, true},
		{"single_row", [][]Element{row(field, 3, 1, 0)}, true},
		{"single_zero_row", [][]Element{row(field, 0, 0, 0)}, true},
		{"identity", [][]Element{row(field, 1, 0, 0), row(field, 0, 1, 0), row(field, 0, 0, 1)}, true},
		{"proper", [][]Element{row(field, 2, 3, 1, 4), row(field, 0, 0, 5, 2), row(field, 0, 0, 0, 7)}, true},
		{"zero_rows_at_bottom", [][]Element{row(field, 1, 2, 3), row(field, 0, 0, 4), row(field, 0, 0, 0)}, true},
		{"zero_row_in_middle", [][]Element{row(field, 1, 2), row(field, 0, 0), row(field, 0, 1)}, false},
		{"pivot_not_right", [][]Element{row(field, 0, 1), row(field, 1, 0)}, false},
		{"same_pivot_column", [][]Element{row(field, 1, 2), row(field, 3, 4)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRowEchelonForm(tt.matrix); got != tt.want {
				t.Errorf("IsRowEchelonForm() = %v, want %v", got, tt.want)
			}
		})
	}
}
