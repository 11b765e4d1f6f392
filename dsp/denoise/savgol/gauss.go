package savgol

import "math"

// pivotEpsilon is the singularity threshold for Gaussian elimination.
const pivotEpsilon = 1e-12

// solve performs Gaussian elimination with partial pivoting on the square
// system matrix*x = rhs. Both arguments are clobbered. A pivot magnitude
// below pivotEpsilon yields ErrSingularSystem.
func solve(matrix [][]float64, rhs []float64) ([]float64, error) {
	n := len(matrix)

	for i := 0; i < n; i++ {
		// Partial pivoting: bring the largest remaining column entry
		// onto the diagonal.
		maxRow := i
		for k := i + 1; k < n; k++ {
			if math.Abs(matrix[k][i]) > math.Abs(matrix[maxRow][i]) {
				maxRow = k
			}
		}
		if maxRow != i {
			matrix[i], matrix[maxRow] = matrix[maxRow], matrix[i]
			rhs[i], rhs[maxRow] = rhs[maxRow], rhs[i]
		}

		if math.Abs(matrix[i][i]) < pivotEpsilon {
			return nil, ErrSingularSystem
		}

		for k := i + 1; k < n; k++ {
			factor := matrix[k][i] / matrix[i][i]
			for j := i; j < n; j++ {
				matrix[k][j] -= factor * matrix[i][j]
			}
			rhs[k] -= factor * rhs[i]
		}
	}

	// Back substitution.
	solution := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		solution[i] = rhs[i]
		for j := i + 1; j < n; j++ {
			solution[i] -= matrix[i][j] * solution[j]
		}
		solution[i] /= matrix[i][i]
	}

	return solution, nil
}
