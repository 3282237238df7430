// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise subtraction and matrix multiplication (used to compose the
// normalized Laplacian), matrix-vector products and the symmetric eigen
// decomposition used for stationary-state analysis. All functions
// perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast-path over the flat buffer and a generic
//     At/Set fallback with the same loop order.
//   - Results are always freshly allocated; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opSub    = "Sub"
	opMul    = "Mul"
	opEigen  = "Eigen"
	opMatVec = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseOf returns a *Dense copy of m. *Dense inputs are cloned directly;
// other implementations are copied through At.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Sub returns a - b as a new Dense.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense (single flat loop); otherwise At/Set i→j.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch from validation.
//   - ErrNaNInf when the difference overflows to ±Inf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range res.data {
				res.data[k] = da.data[k] - db.data[k]
			}
			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			if err = res.Set(i, j, av-bv); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
		}
	}

	return res, nil
}

// Mul returns the matrix product a×b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: *Dense fast-path uses i-k-j order over flat buffers and skips zero
//     entries of a (graph operators are sparse); the fallback uses i-j-k via At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n·m·p), Space O(n·p).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, m.Cols()).
//   - Stage 2: *Dense fast-path accumulates each row over the flat buffer.
//
// Behavior highlights:
//   - A 0×0 matrix with an empty x yields an empty (non-nil) y.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, rows)

	var (
		i, j int
		sum  float64
	)
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			sum = ZeroSum
			for j = 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}
		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Eigen decomposes a symmetric matrix via classical Jacobi rotations.
// It returns the eigenvalues (diagonal of the rotated matrix, in pivot order)
// and Q whose columns are the matching orthonormal eigenvectors: m ≈ Q·diag(λ)·Qᵀ.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol). Copy m into a working *Dense; Q = I.
//   - Stage 2: repeat up to maxIter times: pick the largest off-diagonal |A[p,q]|,
//     stop when it drops below tol, otherwise annihilate it with a plane rotation
//     and accumulate the rotation into Q.
//
// Behavior highlights:
//   - Deterministic pivot choice (first maximum in row-major upper-triangle order).
//   - 0×0 input returns empty eigenvalues and a 0×0 Q.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry (validation).
//   - ErrNaNInf for non-finite tol; ErrMatrixEigenFailed when not converged.
//
// Complexity:
//   - Time O(maxIter·n) per rotation pass plus O(n²) pivot search, Space O(n²).
//
// Notes:
//   - Graph Laplacians are symmetric PSD, so every eigenvalue is ≥ -tol.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol = math.Abs(tol)
	n := m.Rows()
	a, err := denseOf(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter, p, r         int
		maxOff, off        float64
		app, arr, apr      float64
		aip, air, qip, qir float64
		theta, t, c, s     float64
	)
	maxOffDiag := func() (float64, int, int) {
		var best float64
		var bp, br int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if v := math.Abs(a.data[i*n+j]); v > best {
					best, bp, br = v, i, j
				}
			}
		}
		return best, bp, br
	}

	for iter = 0; iter < maxIter; iter++ {
		maxOff, p, r = maxOffDiag()
		if maxOff <= tol {
			break
		}

		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		// θ = (arr−app)/(2·apr), t = sign(θ)/(|θ|+√(θ²+1))
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			off = c*aip - s*air
			a.data[i*n+p], a.data[p*n+i] = off, off
			off = s*aip + c*air
			a.data[i*n+r], a.data[r*n+i] = off, off
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	if maxOff, _, _ = maxOffDiag(); maxOff > tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	eigs := make([]float64, n)
	for j = 0; j < n; j++ {
		eigs[j] = a.data[j*n+j]
	}

	return eigs, q, nil
}
