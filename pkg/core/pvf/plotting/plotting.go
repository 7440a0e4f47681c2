// Package plotting renders a trained grid's vectors and any number of
// overlaid trajectories onto a raster image. It ports
// original_source/training_model.py's BuildGrid.plot_grid (a matplotlib
// quiver plot: blue arrows for unvisited nodes, red for visited) onto
// gocv.io/x/gocv, the image pipeline the teacher uses across cmd/display
// and cmd/reader, since matplotlib has no Go equivalent and plotting is an
// external collaborator the core engine never touches directly.
package plotting

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/itohio/pvf/pkg/core/pvf"
)

// Snapshot is a read-only view of a trained grid, decoupling this package
// from the trainer's internal mutable state. Unvisited nodes (the zero
// vector) are simply skipped by Render, mirroring the source's practice of
// only drawing a visible quiver arrow where one exists.
type Snapshot struct {
	Nx, Ny  int
	Spacing float64
	At      func(i, j int) pvf.Point
}

var (
	visitedColor = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	pathColor    = color.RGBA{R: 30, G: 160, B: 30, A: 255}
)

func toScalar(c color.RGBA) gocv.Scalar {
	return gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), float64(c.A))
}

// Render draws snap's visited nodes as short red arrows and overlays each
// trajectory in trajectories as a green polyline. The image is scaled so
// one grid-space unit maps to pxPerUnit pixels.
func Render(snap Snapshot, pxPerUnit float64, trajectories ...[]pvf.Point) (gocv.Mat, error) {
	if pxPerUnit <= 0 {
		return gocv.Mat{}, fmt.Errorf("plotting: pxPerUnit must be positive")
	}

	yFact := 0.8660254037844386 // sqrt(3)/2, matches pvf's lattice constant
	width := int(float64(snap.Nx)*snap.Spacing/2*pxPerUnit) + 40
	height := int(float64(snap.Ny)*snap.Spacing*yFact*pxPerUnit) + 40

	img := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	img.SetTo(gocv.NewScalar(255, 255, 255, 0))

	toPixel := func(x, y float64) image.Point {
		return image.Pt(int(x*pxPerUnit)+20, height-int(y*pxPerUnit)-20)
	}

	red := toScalar(visitedColor)
	for i := 0; i < snap.Nx; i++ {
		for j := 0; j < snap.Ny; j++ {
			v := snap.At(i, j)
			if v.IsZero() {
				continue
			}

			nodeX := float64(i) * snap.Spacing / 2
			nodeY := float64(j) * snap.Spacing * yFact

			from := toPixel(nodeX, nodeY)
			to := toPixel(nodeX+v.X, nodeY+v.Y)

			gocv.ArrowedLine(&img, from, to, red, 1)
		}
	}

	green := toScalar(pathColor)
	for _, traj := range trajectories {
		for k := 0; k+1 < len(traj); k++ {
			from := toPixel(traj[k].X, traj[k].Y)
			to := toPixel(traj[k+1].X, traj[k+1].Y)
			gocv.Line(&img, from, to, green, 2)
		}
	}

	return img, nil
}

// Save writes img to path, inferring the encoding from its extension.
func Save(path string, img gocv.Mat) error {
	ok := gocv.IMWrite(path, img)
	if !ok {
		return fmt.Errorf("plotting: failed to write %s", path)
	}
	return nil
}
