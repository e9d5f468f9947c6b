//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"fmt"
	"math"

	"github.com/james-bowman/nlp/measures/pairwise"
	"gonum.org/v1/gonum/mat"
)

//
// cosine similarity: dot(v1, v2) / (|v1| * |v2|)
// a zero-norm input has no direction, so the quotient is undefined; that is an error, not a 0 or a NaN
//

// CosineSimilarity - the cosine of the angle between two dense vectors of equal length
func CosineSimilarity(v1 []float64, v2 []float64) (float64, error) {
	const (
		FAIL1 = "CosineSimilarity(): vector lengths differ: %d vs %d"
		FAIL2 = "CosineSimilarity(): vector #%d has zero norm"
	)

	if len(v1) != len(v2) {
		return 0, fmt.Errorf(FAIL1, len(v1), len(v2))
	}

	var dot, n1, n2 float64
	for i := range v1 {
		dot += v1[i] * v2[i]
		n1 += v1[i] * v1[i]
		n2 += v2[i] * v2[i]
	}

	if n1 == 0 {
		return 0, fmt.Errorf(FAIL2, 1)
	}
	if n2 == 0 {
		return 0, fmt.Errorf(FAIL2, 2)
	}

	return dot / (math.Sqrt(n1) * math.Sqrt(n2)), nil
}

// ColumnSimilarity - cosine similarity between two columns of a matrix; used on tf-idf and topic outputs
func ColumnSimilarity(m mat.Matrix, a int, b int) (float64, error) {
	const (
		FAIL1 = "ColumnSimilarity(): column %d is out of range [0, %d)"
	)

	_, c := m.Dims()
	if a < 0 || a >= c {
		return 0, fmt.Errorf(FAIL1, a, c)
	}
	if b < 0 || b >= c {
		return 0, fmt.Errorf(FAIL1, b, c)
	}

	var dm mat.Dense
	dm.CloneFrom(m)

	va := dm.ColView(a)
	vb := dm.ColView(b)

	if mat.Norm(va, 2) == 0 || mat.Norm(vb, 2) == 0 {
		// fall back on the explicit error path; pairwise would yield NaN
		aa := make([]float64, va.Len())
		bb := make([]float64, vb.Len())
		for i := range aa {
			aa[i] = va.AtVec(i)
			bb[i] = vb.AtVec(i)
		}
		return CosineSimilarity(aa, bb)
	}

	return pairwise.CosineSimilarity(va, vb), nil
}
