// Command pvftrain trains a path vector field from a directory of
// trajectory files, optionally synthesizes a pseudo-average trajectory from
// a start point, persists the trained model, and optionally renders a
// diagnostic plot. Flags follow the teacher's flag-package CLI shape
// (cmd/reader/main.go, cmd/monitor/main.go).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/itohio/pvf/pkg/core/logger"
	"github.com/itohio/pvf/pkg/core/pvf"
	"github.com/itohio/pvf/pkg/core/pvf/modelio"
	"github.com/itohio/pvf/pkg/core/pvf/plotting"
	"github.com/itohio/pvf/pkg/core/pvf/trajio"
)

var (
	spacing  = flag.Float64("spacing", 0, "Node spacing (required)")
	extents  = flag.String("extents", "", "Upper-right grid-space corner as x,y (required)")
	trajDir  = flag.String("traj-dir", "", "Directory of *.txt trajectory files to train on")
	out      = flag.String("out", "", "Path to write the persisted model")
	format   = flag.String("format", "", "Output format: json, yaml, or pb (auto-detected from -out if omitted)")
	start    = flag.String("start", "", "Optional start point x,y; if given, synthesizes after training")
	plotPath = flag.String("plot", "", "Optional PNG path for a diagnostic render")
)

func parsePair(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"x,y\", got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return x, y, nil
}

func main() {
	flag.Parse()

	if *spacing <= 0 {
		logger.Log.Error().Msg("-spacing is required and must be positive")
		os.Exit(1)
	}
	if *extents == "" {
		logger.Log.Error().Msg("-extents is required")
		os.Exit(1)
	}

	ex, ey, err := parsePair(*extents)
	if err != nil {
		logger.Log.Error().Err(err).Msg("invalid -extents")
		os.Exit(1)
	}

	model, err := pvf.New(*spacing)
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to construct model")
		os.Exit(1)
	}
	if err := model.SetExtents(pvf.Point{X: ex, Y: ey}); err != nil {
		logger.Log.Error().Err(err).Msg("failed to set extents")
		os.Exit(1)
	}

	if *trajDir != "" {
		files, err := filepath.Glob(filepath.Join(*trajDir, "*.txt"))
		if err != nil {
			logger.Log.Error().Err(err).Msg("failed to list trajectory files")
			os.Exit(1)
		}
		for _, path := range files {
			if err := trainOne(model, path); err != nil {
				logger.Log.Error().Err(err).Str("file", path).Msg("training failed, skipping")
			}
		}
	}

	if *out != "" {
		if err := saveModel(model, *out); err != nil {
			logger.Log.Error().Err(err).Msg("failed to save model")
			os.Exit(1)
		}
	}

	var synthesized []pvf.Point
	if *start != "" {
		sx, sy, err := parsePair(*start)
		if err != nil {
			logger.Log.Error().Err(err).Msg("invalid -start")
			os.Exit(1)
		}
		traj, ok := model.AvTraj(pvf.Point{X: sx, Y: sy})
		if !ok {
			fmt.Println("coverage failure: synthesis reached an entirely unvisited trident")
		} else {
			synthesized = traj
			for _, p := range traj {
				fmt.Printf("%g %g\n", p.X, p.Y)
			}
		}
	}

	if *plotPath != "" {
		if err := renderPlot(model, *plotPath, synthesized); err != nil {
			logger.Log.Error().Err(err).Msg("failed to render plot")
			os.Exit(1)
		}
	}
}

func trainOne(model *pvf.Model, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	traj, err := trajio.ReadTrajectory(f)
	if err != nil {
		return fmt.Errorf("read trajectory: %w", err)
	}

	return model.UpdateGrid(traj)
}

func saveModel(model *pvf.Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer f.Close()

	wireFormat := modelioFormat(path)
	nx, ny := model.Extent()

	grid := make([][][2]float64, nx)
	for i := 0; i < nx; i++ {
		grid[i] = make([][2]float64, ny)
		for j := 0; j < ny; j++ {
			v := model.NodeVector(i, j)
			grid[i][j] = [2]float64{v.X, v.Y}
		}
	}

	upper := model.Extents()
	doc := modelio.Document{
		NodeSpacing:       model.Spacing(),
		GridExtents:       [2]float64{upper.X, upper.Y},
		Grid:              grid,
		AveragePathLength: model.AveragePathLength(),
		GridUpdateCount:   model.TrajectoryCount(),
		MaxCoordCount:     model.MaxCoordCount(),
		ShortestSegment:   model.ShortestSegment(),
	}

	return modelio.Save(f, wireFormat, doc)
}

func modelioFormat(path string) modelio.Format {
	if *format != "" {
		switch strings.ToLower(*format) {
		case "json":
			return modelio.FormatJSON
		case "yaml", "yml":
			return modelio.FormatYAML
		case "pb", "proto", "protobuf":
			return modelio.FormatProtobuf
		}
	}
	return modelio.DetectFormat(path)
}

func renderPlot(model *pvf.Model, path string, synthesized []pvf.Point) error {
	nx, ny := model.Extent()
	snap := plotting.Snapshot{
		Nx:      nx,
		Ny:      ny,
		Spacing: model.Spacing(),
		At:      model.NodeVector,
	}

	var trajs [][]pvf.Point
	if synthesized != nil {
		trajs = append(trajs, synthesized)
	}

	img, err := plotting.Render(snap, 40, trajs...)
	if err != nil {
		return err
	}
	defer img.Close()

	return plotting.Save(path, img)
}
