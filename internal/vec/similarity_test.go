//    CorporaGoServer
//    Copyright: V Sharma 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCosineSimilarityIdentical(t *testing.T) {
	s, err := CosineSimilarity([]float64{1, 0, 2, 0}, []float64{1, 0, 2, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12)
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	s, err := CosineSimilarity([]float64{1, 0, 0}, []float64{0, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, s, 1e-12)
}

func TestCosineSimilaritySymmetric(t *testing.T) {
	v1 := []float64{3, 1, 4, 1, 5}
	v2 := []float64{2, 7, 1, 8, 2}

	a, err := CosineSimilarity(v1, v2)
	require.NoError(t, err)
	b, err := CosineSimilarity(v2, v1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCosineSimilarityScaleInvariant(t *testing.T) {
	v1 := []float64{3, 1, 4}
	v2 := []float64{2, 7, 1}
	scaled := []float64{9, 3, 12}

	a, err := CosineSimilarity(v1, v2)
	require.NoError(t, err)
	b, err := CosineSimilarity(scaled, v2)
	require.NoError(t, err)
	assert.InDelta(t, a, b, 1e-12)
}

func TestCosineSimilarityErrors(t *testing.T) {
	_, err := CosineSimilarity([]float64{1, 2}, []float64{1, 2, 3})
	assert.Error(t, err)

	_, err = CosineSimilarity([]float64{0, 0, 0}, []float64{1, 2, 3})
	assert.Error(t, err)

	_, err = CosineSimilarity([]float64{1, 2, 3}, []float64{0, 0, 0})
	assert.Error(t, err)
}

func TestColumnSimilarity(t *testing.T) {
	// columns: [1 0 2 0], [1 0 2 0], [0 1 0 0], [0 0 0 0]
	m := mat.NewDense(4, 4, []float64{
		1, 1, 0, 0,
		0, 0, 1, 0,
		2, 2, 0, 0,
		0, 0, 0, 0,
	})

	s, err := ColumnSimilarity(m, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12)

	s, err = ColumnSimilarity(m, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, s, 1e-12)

	_, err = ColumnSimilarity(m, 0, 3)
	assert.Error(t, err)

	_, err = ColumnSimilarity(m, 0, 9)
	assert.Error(t, err)
}
