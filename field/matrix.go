package field

// Matrix operations over prime fields

// IsLinearlyIndependentIncremental checks if adding a new vector to an existing REF matrix maintains linear independence.
// Returns the updated REF matrix and whether the vector was linearly independent.
// existingVectors must be in Row Echelon Form (REF); they are never modified.
func IsLinearlyIndependentIncremental(existingVectors [][]Element, newVector []Element) ([][]Element, bool) {
	if len(existingVectors) == 0 {
		// Check if new vector is non-zero
		for _, elem := range newVector {
			if !elem.IsZero() {
				// Return single-row REF with the new vector
				return [][]Element{append([]Element(nil), newVector...)}, true
			}
		}
		return nil, false // zero vector is not independent
	}

	n := len(existingVectors)
	m := len(newVector)

	// n independent vectors already span an m-dimensional space when n >= m
	if n >= m {
		return nil, false
	}

	reduced := append([]Element(nil), newVector...)

	// Process each existing vector (in REF order)
	for i := 0; i < n; i++ {
		pivotCol := pivotColumn(existingVectors[i])
		if pivotCol == -1 {
			continue // zero row (shouldn't happen in valid REF)
		}

		// Eliminate this pivot position in the new vector
		if !reduced[pivotCol].IsZero() {
			factor := reduced[pivotCol].Mul(mustInv(existingVectors[i][pivotCol]))
			for j := pivotCol; j < m; j++ {
				tmp := factor.Mul(existingVectors[i][j])
				reduced[j] = reduced[j].Sub(tmp)
			}
		}
	}

	// An all-zero result means the new vector was a linear combination of existing vectors
	newVectorPivot := pivotColumn(reduced)
	if newVectorPivot == -1 {
		return nil, false
	}

	// REF requires each pivot to be to the right of the pivot above it
	insertPos := n
	for i := 0; i < n; i++ {
		if newVectorPivot < pivotColumn(existingVectors[i]) {
			insertPos = i
			break
		}
	}

	newREF := make([][]Element, n+1)
	for i := 0; i < insertPos; i++ {
		newREF[i] = append([]Element(nil), existingVectors[i]...)
	}
	newREF[insertPos] = reduced
	for i := insertPos; i < n; i++ {
		newREF[i+1] = append([]Element(nil), existingVectors[i]...)
	}

	return newREF, true
}

// IsRowEchelonForm checks if a matrix is in Row Echelon Form (REF).
// REF requirements:
// 1. All non-zero rows are above any zero rows
// 2. Each leading entry (pivot) of a row is to the right of the leading entry of the row above it
// 3. All entries in a column below a leading entry are zeros
func IsRowEchelonForm(matrix [][]Element) bool {
	prevPivotCol := -1

	for i, row := range matrix {
		pivotCol := pivotColumn(row)

		if pivotCol == -1 {
			// All remaining rows must also be zero rows
			for k := i + 1; k < len(matrix); k++ {
				if pivotColumn(matrix[k]) != -1 {
					return false
				}
			}
			return true
		}

		if pivotCol <= prevPivotCol {
			return false
		}

		for k := i + 1; k < len(matrix); k++ {
			if pivotCol < len(matrix[k]) && !matrix[k][pivotCol].IsZero() {
				return false
			}
		}

		prevPivotCol = pivotCol
	}

	return true
}

// pivotColumn returns the index of the first nonzero entry, or -1
func pivotColumn(row []Element) int {
	for j, elem := range row {
		if !elem.IsZero() {
			return j
		}
	}
	return -1
}

func mustInv(e Element) Element {
	inv, err := e.Inv()
	if err != nil {
		panic(err)
	}
	return inv
}
