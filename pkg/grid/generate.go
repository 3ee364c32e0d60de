// pkg/grid/generate.go
package grid

// Rand is the slice of a random source the generator needs.
type Rand interface {
	Intn(n int) int
}

// GeneratePath carves a random route from the west edge to the east edge
// of a size x size grid. The walk is monotone in x with occasional
// vertical runs, so it can never cross itself. The same source always
// produces the same route. The caller keeps size >= 3: smaller grids
// have no interior row to walk.
func GeneratePath(size int, rng Rand) []Point {
	y := 1 + rng.Intn(size-2)
	path := []Point{{X: 0, Y: y}}

	for x := 0; x < size-1; x++ {
		if x > 0 && rng.Intn(3) == 0 {
			dy := 1
			if rng.Intn(2) == 0 {
				dy = -1
			}
			run := 1 + rng.Intn(3)
			for i := 0; i < run; i++ {
				ny := y + dy
				if ny < 1 || ny > size-2 {
					break
				}
				y = ny
				path = append(path, Point{X: x, Y: y})
			}
		}
		path = append(path, Point{X: x + 1, Y: y})
	}
	return path
}
