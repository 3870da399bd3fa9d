package instancing

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid describes a square lattice of instance offsets. Cells run over
// [Min, Max) in both axes stepping by Step; cell (x, y) lands at
// (x/10 + Offset, y/10 + Offset) in clip space.
type Grid struct {
	Min, Max, Step int
	Offset         float32
}

// DefaultGrid yields the 10x10 lattice the demo draws: 100 cells spaced 0.2
// apart from (-0.9, -0.9) to (0.9, 0.9).
var DefaultGrid = Grid{Min: -10, Max: 10, Step: 2, Offset: 0.1}

// Len returns the number of cells in g, or 0 if g is empty or invalid.
func (g Grid) Len() int {
	if g.Step <= 0 || g.Max <= g.Min {
		return 0
	}
	n := (g.Max - g.Min + g.Step - 1) / g.Step
	return n * n
}

// Offsets generates the per-instance translations of g, rows (y) outermost.
func Offsets(g Grid) ([]mgl32.Vec2, error) {
	if g.Step <= 0 {
		return nil, fmt.Errorf("instancing: grid step must be positive, got %d", g.Step)
	}
	if g.Max <= g.Min {
		return nil, fmt.Errorf("instancing: empty grid range [%d, %d)", g.Min, g.Max)
	}
	offsets := make([]mgl32.Vec2, 0, g.Len())
	for y := g.Min; y < g.Max; y += g.Step {
		for x := g.Min; x < g.Max; x += g.Step {
			offsets = append(offsets, mgl32.Vec2{
				float32(x)/10 + g.Offset,
				float32(y)/10 + g.Offset,
			})
		}
	}
	return offsets, nil
}
