package asteroids

import (
	"github.com/chewxy/math32"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// GeneratePolygon builds a closed irregular ring for a size class.
//
// The turn is split into Vertices equal sectors and each vertex gets a random
// angle inside its own sector, so angles stay monotonic and edges never cross.
// Radii are drawn independently from [MinRadius, MaxRadius]. The first vertex
// is repeated at the end, giving Vertices+1 points.
func GeneratePolygon(p config.SizeParams, rng Rand) []core.Point {
	sector := 2 * math32.Pi / float32(p.Vertices)
	points := make([]core.Point, 0, p.Vertices+1)
	for i := 0; i < p.Vertices; i++ {
		angle := (rng.Float32() + float32(i)) * sector
		radius := randRange(rng, p.MinRadius, p.MaxRadius)
		points = append(points, core.FromPolar(angle, radius))
	}
	return append(points, points[0])
}
