// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructions (identity).
//   - Provide the row reduction used for vertex degrees.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// n == 0 yields a legal 0×0 matrix.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	m, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = identityEntry
	}

	return m, nil
}

// RowSums returns Σ_j m[i,j] for each row i.
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1
	}

	return MatVec(m, ones)
}
