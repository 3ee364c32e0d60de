// pkg/grid/grid.go
package grid

import "fmt"

// TileKind classifies a tile on the map.
type TileKind uint8

const (
	TileGrass TileKind = iota
	TilePath
	TileSpawn
	TileGoal
)

// Point is an integer tile coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile is one cell of the map. PathIndex is the back-reference into the
// walking order of Grid.Path, or -1 for tiles off the route.
type Tile struct {
	Kind      TileKind
	PathIndex int
}

// Grid is a square tile map with a single fixed route from spawn to goal.
// Enemies walk Path in order; everything else is buildable ground.
type Grid struct {
	Size  int
	Tiles [][]Tile
	Path  []Point
}

// New builds a grid of the given size around an explicit walking path.
// The path must have at least two tiles, stay inside the grid, step only
// between 4-neighbors and never visit a tile twice.
func New(size int, path []Point) (*Grid, error) {
	if size < 2 {
		return nil, fmt.Errorf("grid size %d is too small", size)
	}
	if len(path) < 2 {
		return nil, fmt.Errorf("path needs at least 2 tiles, got %d", len(path))
	}

	g := &Grid{Size: size}
	g.Tiles = make([][]Tile, size)
	for y := range g.Tiles {
		g.Tiles[y] = make([]Tile, size)
		for x := range g.Tiles[y] {
			g.Tiles[y][x] = Tile{Kind: TileGrass, PathIndex: -1}
		}
	}

	seen := make(map[Point]struct{}, len(path))
	for i, p := range path {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("path tile %v is outside the %dx%d grid", p, size, size)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("path visits %v twice", p)
		}
		seen[p] = struct{}{}
		if i > 0 {
			prev := path[i-1]
			if manhattan(prev, p) != 1 {
				return nil, fmt.Errorf("path jumps from %v to %v", prev, p)
			}
		}

		kind := TilePath
		if i == 0 {
			kind = TileSpawn
		} else if i == len(path)-1 {
			kind = TileGoal
		}
		g.Tiles[p.Y][p.X] = Tile{Kind: kind, PathIndex: i}
	}

	g.Path = append([]Point(nil), path...)
	return g, nil
}

// At returns the tile at p. The caller must keep p in bounds.
func (g *Grid) At(p Point) Tile {
	return g.Tiles[p.Y][p.X]
}

func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

// IsBuildable reports whether a tower may occupy p. Occupancy by an
// existing tower is the game's concern, not the map's.
func (g *Grid) IsBuildable(p Point) bool {
	return g.InBounds(p) && g.At(p).Kind == TileGrass
}

// Spawn is the tile enemies enter on.
func (g *Grid) Spawn() Point {
	return g.Path[0]
}

// Goal is the tile enemies are trying to reach.
func (g *Grid) Goal() Point {
	return g.Path[len(g.Path)-1]
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
