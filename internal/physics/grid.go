package physics

import (
	"cmp"
	"slices"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CellKey for spatial hashing
type CellKey struct {
	X, Y, Z int
}

// SpherePair indexes two spheres of a World with I < J.
type SpherePair struct {
	I, J int
}

// grid buckets spheres by cell so only spheres in the same or neighboring
// cells are paired. The cell edge is never smaller than the largest sphere
// diameter, which keeps every overlapping pair within one cell of each other.
type grid struct {
	cellSize float32
	cells    map[CellKey][]int
	pairs    []SpherePair
}

func newGrid() *grid {
	return &grid{cells: make(map[CellKey][]int)}
}

func (g *grid) posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(math32.Floor(pos.X / g.cellSize)),
		Y: int(math32.Floor(pos.Y / g.cellSize)),
		Z: int(math32.Floor(pos.Z / g.cellSize)),
	}
}

// rebuild clears and repopulates the grid from the current sphere positions.
func (g *grid) rebuild(spheres []Sphere, minCell float32) {
	g.cellSize = minCell
	for i := range spheres {
		if d := 2 * spheres[i].Radius; d > g.cellSize {
			g.cellSize = d
		}
	}

	for k, bucket := range g.cells {
		g.cells[k] = bucket[:0]
	}
	for i := range spheres {
		if spheres[i].Inert() {
			continue
		}
		cell := g.posToCell(spheres[i].Position)
		g.cells[cell] = append(g.cells[cell], i)
	}
}

// candidatePairs returns every pair sharing a cell or neighboring cells,
// each once, sorted into the order an all-pairs loop would visit them.
func (g *grid) candidatePairs(spheres []Sphere) []SpherePair {
	g.pairs = g.pairs[:0]

	for i := range spheres {
		if spheres[i].Inert() {
			continue
		}
		cell := g.posToCell(spheres[i].Position)

		// Check 3x3x3 cube of cells centered on the sphere's cell
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					key := CellKey{cell.X + dx, cell.Y + dy, cell.Z + dz}
					for _, j := range g.cells[key] {
						if j > i {
							g.pairs = append(g.pairs, SpherePair{I: i, J: j})
						}
					}
				}
			}
		}
	}

	slices.SortFunc(g.pairs, func(a, b SpherePair) int {
		if c := cmp.Compare(a.I, b.I); c != 0 {
			return c
		}
		return cmp.Compare(a.J, b.J)
	})
	return g.pairs
}
