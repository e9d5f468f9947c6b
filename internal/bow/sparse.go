//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bow

import (
	"fmt"
	"sort"
)

//
// a sparse vector is an ordered list of (id, value) pairs; absent ids are implicitly zero;
// ids are unique within a vector
//

// Entry - one nonzero cell of a sparse vector
type Entry struct {
	ID  int
	Val float64
}

// SparseVector - the nonzero cells of a vector, in ascending ID order
type SparseVector []Entry

// ToDense - expand a sparse vector into a zero-initialized dense slice of length dim
func ToDense(sv SparseVector, dim int) ([]float64, error) {
	const (
		FAIL1 = "ToDense(): dimension must be positive; got %d"
		FAIL2 = "ToDense(): id %d is out of range [0, %d)"
	)

	if dim <= 0 {
		return nil, fmt.Errorf(FAIL1, dim)
	}

	dense := make([]float64, dim)
	for _, e := range sv {
		if e.ID < 0 || e.ID >= dim {
			return nil, fmt.Errorf(FAIL2, e.ID, dim)
		}
		dense[e.ID] = e.Val
	}
	return dense, nil
}

// ToDenseTruncated - like ToDense, but ids outside [0, dim) are silently skipped; wanted when plotting
// only the first few topics of a larger model
func ToDenseTruncated(sv SparseVector, dim int) []float64 {
	if dim <= 0 {
		return []float64{}
	}

	dense := make([]float64, dim)
	for _, e := range sv {
		if e.ID < 0 || e.ID >= dim {
			continue
		}
		dense[e.ID] = e.Val
	}
	return dense
}

// FromDense - collect the nonzero cells of a dense slice into a sparse vector
func FromDense(dense []float64) SparseVector {
	var sv SparseVector
	for i, v := range dense {
		if v != 0 {
			sv = append(sv, Entry{ID: i, Val: v})
		}
	}
	return sv
}

// Normalize - sort by ID and merge duplicate ids by summation; most callers never need this,
// but count accumulation can produce unordered duplicates
func Normalize(sv SparseVector) SparseVector {
	if len(sv) == 0 {
		return sv
	}

	sums := make(map[int]float64, len(sv))
	for _, e := range sv {
		sums[e.ID] += e.Val
	}

	out := make(SparseVector, 0, len(sums))
	for id, v := range sums {
		if v != 0 {
			out = append(out, Entry{ID: id, Val: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
