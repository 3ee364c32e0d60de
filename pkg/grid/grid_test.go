// pkg/grid/grid_test.go
package grid

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightPath(length int) []Point {
	path := make([]Point, length)
	for i := range path {
		path[i] = Point{X: i, Y: 1}
	}
	return path
}

func TestNewGridRejectsBadPaths(t *testing.T) {
	tests := []struct {
		name string
		size int
		path []Point
	}{
		{"size too small", 1, straightPath(2)},
		{"path too short", 5, []Point{{0, 1}}},
		{"out of bounds", 5, []Point{{0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}}},
		{"diagonal jump", 5, []Point{{0, 0}, {1, 1}}},
		{"gap", 5, []Point{{0, 1}, {2, 1}}},
		{"revisits a tile", 5, []Point{{0, 1}, {1, 1}, {1, 2}, {1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.size, tt.path)
			assert.Error(t, err)
		})
	}
}

func TestNewGridMarksTiles(t *testing.T) {
	g, err := New(5, straightPath(5))
	require.NoError(t, err)

	assert.Equal(t, Point{X: 0, Y: 1}, g.Spawn())
	assert.Equal(t, Point{X: 4, Y: 1}, g.Goal())
	assert.Equal(t, TileSpawn, g.At(Point{X: 0, Y: 1}).Kind)
	assert.Equal(t, TileGoal, g.At(Point{X: 4, Y: 1}).Kind)
	assert.Equal(t, TilePath, g.At(Point{X: 2, Y: 1}).Kind)
	assert.Equal(t, TileGrass, g.At(Point{X: 2, Y: 3}).Kind)

	// Back-references into the walking order.
	for i, p := range g.Path {
		assert.Equal(t, i, g.At(p).PathIndex)
	}
	assert.Equal(t, -1, g.At(Point{X: 2, Y: 3}).PathIndex)
}

func TestIsBuildable(t *testing.T) {
	g, err := New(5, straightPath(5))
	require.NoError(t, err)

	assert.True(t, g.IsBuildable(Point{X: 2, Y: 2}))
	assert.False(t, g.IsBuildable(Point{X: 2, Y: 1}), "path tiles are not buildable")
	assert.False(t, g.IsBuildable(Point{X: 0, Y: 1}), "spawn is not buildable")
	assert.False(t, g.IsBuildable(Point{X: -1, Y: 0}), "outside the grid")
}

func TestGeneratePathWorksOnTheSmallestGrid(t *testing.T) {
	// Size 3 leaves a single interior row, the tightest grid a route can
	// be carved on.
	for seed := int64(0); seed < 5; seed++ {
		path := GeneratePath(3, rand.New(rand.NewSource(seed)))
		_, err := New(3, path)
		require.NoError(t, err, "seed %d", seed)
	}
}

func TestGeneratePathIsValidAndDeterministic(t *testing.T) {
	const size = 14
	for seed := int64(0); seed < 20; seed++ {
		path := GeneratePath(size, rand.New(rand.NewSource(seed)))
		g, err := New(size, path)
		require.NoError(t, err, "seed %d produced an invalid path", seed)
		assert.Equal(t, 0, g.Spawn().X, "route starts on the west edge")
		assert.Equal(t, size-1, g.Goal().X, "route ends on the east edge")

		again := GeneratePath(size, rand.New(rand.NewSource(seed)))
		assert.Equal(t, path, again, "same seed must carve the same route")
	}
}
