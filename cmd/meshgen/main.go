// meshgen is a CLI utility that generates the table scene meshes and writes
// them as OBJ, TSM binary or YAML.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/tablescene/internal/config"
	"github.com/Faultbox/tablescene/internal/engine/mesh"
	"github.com/Faultbox/tablescene/internal/engine/scene"
	"github.com/Faultbox/tablescene/internal/export"
	"github.com/Faultbox/tablescene/internal/logger"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "help", "-h", "--help":
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fail(err)
	}
	defer logger.Sync()

	switch command {
	case "gen", "g":
		err = cmdGen(cfg, args)
	case "scene":
		err = cmdScene(cfg, args)
	case "info", "i":
		err = cmdInfo(cfg, args)
	case "list", "ls":
		err = cmdList(cfg)
	case "init":
		err = cmdInit(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	// FlagSet already printed its usage for -h
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		logger.Sync()
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println(`meshgen - parametric mesh generator for the table scene

Usage:
  meshgen [global options] <command> [options]

Global options:
  -config <path>   Config file (.yaml or .toml)
  -debug           Enable debug logging
  -out <dir>       Output directory
  -format <fmt>    Output format: obj, bin, yaml
  -sides <n>       Default side count for cylinders and cones

Commands:
  gen <shape> [options]    Generate one shape and write it
  scene                    Generate every scene part into one file
  info <shape|file.tsm>    Show counts and bounds
  list                     List scene parts
  init [path]              Write the effective config to a file

Shapes:
  ` + shapeNames() + `

Examples:
  meshgen gen sphere -rings 10 -segments 16 -radius 0.5
  meshgen -format yaml gen cone -sides 8 -color 0.62,0.93,0.24,1
  meshgen -format bin scene
  meshgen info out/scene.tsm`)
}

func shapeNames() string {
	names := make([]string, len(mesh.Shapes))
	for i, s := range mesh.Shapes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// shapeFlags registers the per-shape options shared by gen and info.
type shapeFlags struct {
	name     *string
	sides    *int
	rings    *int
	segments *int
	sections *int
	height   *float64
	radius   *float64
	color    *string
}

func newShapeFlags(fs *flag.FlagSet, cfg *config.Config) *shapeFlags {
	return &shapeFlags{
		name:     fs.String("name", "", "Mesh name (default: shape name)"),
		sides:    fs.Int("sides", 0, "Side count (default: from config)"),
		rings:    fs.Int("rings", cfg.Mesh.Rings, "Sphere rings"),
		segments: fs.Int("segments", cfg.Mesh.Segments, "Sphere segments"),
		sections: fs.Int("sections", cfg.Mesh.PlaneSections, "Plane sections per axis"),
		height:   fs.Float64("height", 1, "Height"),
		radius:   fs.Float64("radius", 0.5, "Radius"),
		color:    fs.String("color", "1,1,1,1", "Vertex color as r,g,b[,a]"),
	}
}

func (f *shapeFlags) spec(shape mesh.Shape, cfg *config.Config) (mesh.Spec, error) {
	color, err := parseColor(*f.color)
	if err != nil {
		return mesh.Spec{}, err
	}

	sides := *f.sides
	if sides == 0 {
		sides = cfg.Mesh.Sides
		if shape == mesh.ShapeCone || shape == mesh.ShapePyramid {
			sides = cfg.Mesh.ConeSides
		}
	}

	return mesh.Spec{
		Name:     *f.name,
		Shape:    shape,
		Sides:    sides,
		Rings:    *f.rings,
		Segments: *f.segments,
		Sections: *f.sections,
		Height:   float32(*f.height),
		Radius:   float32(*f.radius),
		Color:    color,
	}, nil
}

// parseShapeArgs splits "<shape> [options]" and parses the options.
func parseShapeArgs(cmd string, cfg *config.Config, args []string) (mesh.Spec, error) {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return mesh.Spec{}, fmt.Errorf("usage: meshgen %s <shape> [options]", cmd)
	}
	shape, err := mesh.ParseShape(args[0])
	if err != nil {
		return mesh.Spec{}, err
	}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	sf := newShapeFlags(fs, cfg)
	if err := fs.Parse(args[1:]); err != nil {
		return mesh.Spec{}, err
	}
	return sf.spec(shape, cfg)
}

func parseColor(s string) (mesh.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return mesh.Color{}, fmt.Errorf("color %q: want r,g,b or r,g,b,a", s)
	}

	ch := [4]float32{1, 1, 1, 1}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mesh.Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		ch[i] = float32(v)
	}
	return mesh.RGBA(ch[0], ch[1], ch[2], ch[3]), nil
}

func cmdGen(cfg *config.Config, args []string) error {
	spec, err := parseShapeArgs("gen", cfg, args)
	if err != nil {
		return err
	}

	meshes, err := mesh.Build(spec)
	if err != nil {
		return err
	}

	name := spec.Name
	if name == "" {
		name = string(spec.Shape)
	}
	path, err := export.WriteFile(cfg.Output.Dir, name, cfg.Output.Format, meshes)
	if err != nil {
		return err
	}

	logger.Info("mesh written",
		zap.String("shape", string(spec.Shape)),
		zap.String("path", path),
		zap.Int("meshes", len(meshes)),
	)
	fmt.Println(path)
	return nil
}

func cmdScene(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("scene", flag.ContinueOnError)
	name := fs.String("name", "scene", "Output file name without extension")
	if err := fs.Parse(args); err != nil {
		return err
	}

	parts, err := scene.FromConfig(cfg)
	if err != nil {
		return err
	}
	meshes, err := scene.Build(parts)
	if err != nil {
		return err
	}

	sc := scene.New(scene.DefaultConfig(), meshes)
	vertices, indices := sc.Stats()

	path, err := export.WriteFile(cfg.Output.Dir, *name, cfg.Output.Format, sc.Meshes)
	if err != nil {
		return err
	}

	logger.Info("scene written",
		zap.String("path", path),
		zap.Int("vertices", vertices),
		zap.Int("indices", indices),
	)
	fmt.Println(path)
	return nil
}

func cmdInfo(cfg *config.Config, args []string) error {
	var (
		meshes []*mesh.Mesh
		err    error
	)
	if len(args) > 0 && strings.HasSuffix(strings.ToLower(args[0]), ".tsm") {
		meshes, err = export.ReadBinaryFile(args[0])
	} else {
		var spec mesh.Spec
		spec, err = parseShapeArgs("info", cfg, args)
		if err == nil {
			meshes, err = mesh.Build(spec)
		}
	}
	if err != nil {
		return err
	}

	for _, m := range meshes {
		b := m.Bounds()
		size := b.Size()
		fmt.Printf("Mesh:      %s\n", m.Name)
		fmt.Printf("Topology:  %s\n", m.Topology)
		fmt.Printf("Vertices:  %d (%d bytes)\n", m.VertexCount(), m.VertexCount()*mesh.VertexStride)
		fmt.Printf("Indices:   %d\n", len(m.Indices))
		fmt.Printf("Triangles: %d\n", len(m.Triangles()))
		fmt.Printf("Bounds:    (%.4f, %.4f, %.4f) - (%.4f, %.4f, %.4f)\n",
			b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
		fmt.Printf("Size:      %.4f x %.4f x %.4f\n", size.X, size.Y, size.Z)
		fmt.Println()
	}
	return nil
}

func cmdList(cfg *config.Config) error {
	parts, err := scene.FromConfig(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %-14s %-20s %-18s %s\n", "NAME", "SHAPE", "PARAMS", "COLOR", "POSITION")
	for _, p := range parts {
		position := "-"
		if p.Placed() {
			position = fmt.Sprintf("%g,%g,%g", p.Position.X, p.Position.Y, p.Position.Z)
		}
		fmt.Printf("%-12s %-14s %-20s %-18s %s\n",
			p.Name, p.Shape, describeParams(p.Spec),
			fmt.Sprintf("%.3g,%.3g,%.3g,%.3g", p.Color.R, p.Color.G, p.Color.B, p.Color.A),
			position)
	}
	return nil
}

func describeParams(s mesh.Spec) string {
	switch s.Shape {
	case mesh.ShapeSphere:
		return fmt.Sprintf("r=%g %dx%d", s.Radius, s.Rings, s.Segments)
	case mesh.ShapePlane:
		return fmt.Sprintf("%dx%d", s.Sections, s.Sections)
	default:
		return fmt.Sprintf("r=%g h=%g n=%d", s.Radius, s.Height, s.Sides)
	}
}

func cmdInit(cfg *config.Config, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	logger.Debug("config saved", zap.String("path", path), zap.Int("scene_parts", len(cfg.Scene)))
	fmt.Printf("Config written to %s\n", path)
	return nil
}
