package progression_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/progressions/progression"
)

// TestMean covers the three families against hand-computed values.
func TestMean(t *testing.T) {
	got, err := progression.Mean(progression.Arithmetic, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	got, err = progression.Mean(progression.Geometric, []float64{1, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-12)

	got, err = progression.Mean(progression.Harmonic, []float64{1, 1.0 / 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-12)
}

// TestMean_Signs: negative input is averaged by magnitude and negated back;
// a mixed-sign harmonic mean is n / Σ(1/x), a mixed-sign geometric mean is NaN.
func TestMean_Signs(t *testing.T) {
	got, err := progression.Mean(progression.Harmonic, []float64{-1, -1.0 / 3})
	require.NoError(t, err)
	assert.InDelta(t, -0.5, got, 1e-12)

	got, err = progression.Mean(progression.Geometric, []float64{-1, -4})
	require.NoError(t, err)
	assert.InDelta(t, -2.0, got, 1e-12)

	got, err = progression.Mean(progression.Harmonic, []float64{1, -0.5})
	require.NoError(t, err)
	assert.Equal(t, -2.0, got)

	got, err = progression.Mean(progression.Geometric, []float64{-1, 4})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "got %v", got)

	got, err = progression.Mean(progression.Arithmetic, []float64{-1, -4})
	require.NoError(t, err)
	assert.Equal(t, -2.5, got)
}

// TestMean_Errors: empty input and unknown kinds.
func TestMean_Errors(t *testing.T) {
	_, err := progression.Mean(progression.Arithmetic, nil)
	assert.ErrorIs(t, err, progression.ErrRange)

	_, err = progression.Mean(progression.Unknown, []float64{1, 2})
	assert.ErrorIs(t, err, progression.ErrUnknownKind)
}

// TestIsMeanOfNeighbours_Generated: each generator satisfies its own mean property.
func TestIsMeanOfNeighbours_Generated(t *testing.T) {
	for _, kind := range []progression.Kind{progression.Arithmetic, progression.Geometric, progression.Harmonic} {
		t.Run(kind.String(), func(t *testing.T) {
			gen, err := progression.GeneratorFor(kind)
			require.NoError(t, err)
			seq, err := gen(1, 6, 3)
			require.NoError(t, err)

			ok, err := progression.IsMeanOfNeighbours(kind, seq)
			require.NoError(t, err)
			assert.True(t, ok, "%v", seq)
		})
	}
}

// TestIsMeanOfNeighbours_GeneratedSigned: negative starts, negative scales and
// large magnitudes still satisfy the family mean property.
func TestIsMeanOfNeighbours_GeneratedSigned(t *testing.T) {
	cases := []struct {
		name         string
		kind         progression.Kind
		start, scale float64
	}{
		{"geometric negative ratio", progression.Geometric, 1, -2},
		{"geometric negative start", progression.Geometric, -1, 2},
		{"geometric both negative", progression.Geometric, -3, -0.5},
		{"geometric large magnitude", progression.Geometric, 1e6, 1000},
		{"harmonic negative", progression.Harmonic, -1, -1},
		{"harmonic sign change", progression.Harmonic, 1, -0.3},
		{"harmonic large magnitude", progression.Harmonic, 1e-9, 1e-9},
		{"arithmetic negative", progression.Arithmetic, -4, -1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen, err := progression.GeneratorFor(tc.kind)
			require.NoError(t, err)
			seq, err := gen(tc.start, 5, tc.scale)
			require.NoError(t, err)

			ok, err := progression.IsMeanOfNeighbours(tc.kind, seq)
			require.NoError(t, err)
			assert.True(t, ok, "%v", seq)
		})
	}
}

// TestIsMeanOfNeighbours_GeometricSigns: neighbours of opposite sign never
// belong to a geometric progression.
func TestIsMeanOfNeighbours_GeometricSigns(t *testing.T) {
	ok, err := progression.IsMeanOfNeighbours(progression.Geometric, []float64{1, -2, 4, -8})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = progression.IsMeanOfNeighbours(progression.Geometric, []float64{1, 2, -4})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = progression.IsMeanOfNeighbours(progression.Geometric, []float64{1, 0, 4})
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestIsMeanOfNeighbours_RelativeTolerance: eps scales with the terms for
// geometric and harmonic checks.
func TestIsMeanOfNeighbours_RelativeTolerance(t *testing.T) {
	// 1.0005e9 is 0.05% off the geometric mean 1e9.
	seq := []float64{1e6, 1.0005e9, 1e12}

	ok, err := progression.IsMeanOfNeighbours(progression.Geometric, seq)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = progression.IsMeanOfNeighbours(progression.Geometric, seq, progression.WithEpsilon(1e-4))
	require.NoError(t, err)
	assert.False(t, ok)

	// Terms far below eps are still told apart.
	ok, err = progression.IsMeanOfNeighbours(progression.Harmonic, []float64{1e-6, 3e-6, 5e-6})
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestIsMeanOfNeighbours_Mismatch: the wrong mean is rejected.
func TestIsMeanOfNeighbours_Mismatch(t *testing.T) {
	ok, err := progression.IsMeanOfNeighbours(progression.Arithmetic, []float64{1, 2, 4})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = progression.IsMeanOfNeighbours(progression.Harmonic, []float64{1, 3, 5})
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestIsMeanOfNeighbours_Epsilon: tolerance is configurable.
func TestIsMeanOfNeighbours_Epsilon(t *testing.T) {
	seq := []float64{1, 2.0005, 3}

	ok, err := progression.IsMeanOfNeighbours(progression.Arithmetic, seq)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = progression.IsMeanOfNeighbours(progression.Arithmetic, seq, progression.WithEpsilon(1e-4))
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestIsMeanOfNeighbours_Errors: too short and unknown kind.
func TestIsMeanOfNeighbours_Errors(t *testing.T) {
	_, err := progression.IsMeanOfNeighbours(progression.Arithmetic, []float64{1, 2})
	assert.ErrorIs(t, err, progression.ErrRange)

	_, err = progression.IsMeanOfNeighbours(progression.Kind(7), []float64{1, 2, 3})
	assert.ErrorIs(t, err, progression.ErrUnknownKind)
}
